package assessment

import (
	"time"

	"PhysioGolang/internal/entity"
	"PhysioGolang/pkg/movenet"
	"PhysioGolang/pkg/nlp"
)

// Share channels accepted by the routine sharing endpoint.
const (
	ShareChannelWhatsapp = "whatsapp"
	ShareChannelEmail    = "email"
)

// StartSessionRequest opens a new assessment. Passing a known session_id
// resumes it instead of greeting again.
type StartSessionRequest struct {
	UserName  string `json:"user_name" validate:"omitempty,max=100"`
	SessionID string `json:"session_id" validate:"omitempty,max=64"`
}

type StartSessionResponse struct {
	SessionID string `json:"session_id"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	Message   string `json:"message"`
	State     string `json:"state"`
}

type MessageRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required,min=1,max=1000"`
}

// RecommendedTest is the catalog subset the frontend needs to queue a test.
type RecommendedTest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	YoutubeLink string `json:"youtube_link"`
}

type ProblemAreasResponse struct {
	Message          string            `json:"message"`
	ProblemAreas     []string          `json:"problem_areas"`
	RecommendedTests []RecommendedTest `json:"recommended_tests"`
	PainDetails      *nlp.PainDetails  `json:"pain_details,omitempty"`
	State            string            `json:"state"`
}

type SessionAnalyzeRequest struct {
	SessionID string             `json:"session_id" validate:"required"`
	TestID    string             `json:"test_id" validate:"required"`
	Keypoints []movenet.Keypoint `json:"keypoints"`
}

type SessionAnalyzeResponse struct {
	Success            bool             `json:"success"`
	Explanation        string           `json:"explanation,omitempty"`
	Results            *movenet.Result  `json:"results,omitempty"`
	NextTest           *RecommendedTest `json:"next_test,omitempty"`
	AssessmentComplete bool             `json:"assessment_complete"`
	CaptureURL         string           `json:"capture_url,omitempty"`
}

type RoutineResponse struct {
	Message string          `json:"message"`
	Routine *entity.Routine `json:"routine"`
	State   string          `json:"state"`
}

type ShareRoutineRequest struct {
	Channel     string `json:"channel" validate:"required,oneof=whatsapp email"`
	PhoneNumber string `json:"phone_number" validate:"required_if=Channel whatsapp,omitempty,min=8,max=20"`
	Email       string `json:"email" validate:"required_if=Channel email,omitempty,email"`
}

type ShareRoutineResponse struct {
	Message string `json:"message"`
	Channel string `json:"channel"`
}

// ResultRecord is one archived test verdict enriched with the catalog name
// and a presigned capture link when a capture exists.
type ResultRecord struct {
	TestID        string          `json:"test_id"`
	TestName      string          `json:"test_name"`
	Passed        bool            `json:"passed"`
	Angle         float64         `json:"angle,omitempty"`
	Depth         string          `json:"depth,omitempty"`
	Details       string          `json:"details,omitempty"`
	Checks        map[string]bool `json:"checks,omitempty"`
	Compensations []string        `json:"compensations,omitempty"`
	CaptureURL    string          `json:"capture_url,omitempty"`
	CompletedAt   time.Time       `json:"completed_at"`
}

type ResultsResponse struct {
	SessionID    string         `json:"session_id"`
	UserName     string         `json:"user_name,omitempty"`
	UserConcerns string         `json:"user_concerns,omitempty"`
	ProblemAreas []string       `json:"problem_areas,omitempty"`
	Results      []ResultRecord `json:"results"`
	Total        int            `json:"total"`
}
