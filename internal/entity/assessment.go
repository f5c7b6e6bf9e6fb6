package entity

import (
	"time"

	"PhysioGolang/pkg/movenet"
)

const (
	StateAwaitingProblemAreas = "awaiting_problem_areas"
	StateTesting              = "testing"
	StateRoutineReady         = "routine_ready"
)

// AssessmentSession is the conversational state kept in Redis for the
// lifetime of one assessment.
type AssessmentSession struct {
	ID               string                    `json:"session_id"`
	UserName         string                    `json:"user_name"`
	SessionStarted   bool                      `json:"session_started"`
	GreetingSent     bool                      `json:"greeting_sent"`
	UserConcerns     string                    `json:"user_concerns"`
	ProblemAreas     []string                  `json:"problem_areas"`
	RecommendedTests []string                  `json:"recommended_tests"`
	CompletedTests   []string                  `json:"completed_tests"`
	TestResults      map[string]movenet.Result `json:"test_results"`
	Routine          *Routine                  `json:"routine,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
	LastActivity     time.Time                 `json:"last_activity"`
}

type Routine struct {
	Explanation string     `json:"explanation"`
	Exercises   []Exercise `json:"exercises"`
}

// Assessment is the Postgres record for one session, written at start and
// updated once the user's concerns are known.
type Assessment struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"session_id"`
	UserName     string    `json:"user_name"`
	UserConcerns string    `json:"user_concerns"`
	ProblemAreas []string  `json:"problem_areas"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AssessmentResult archives one completed test verdict.
type AssessmentResult struct {
	ID            string          `json:"id"`
	SessionID     string          `json:"session_id"`
	TestID        string          `json:"test_id"`
	Passed        bool            `json:"passed"`
	Angle         float64         `json:"angle,omitempty"`
	Depth         string          `json:"depth,omitempty"`
	Details       string          `json:"details,omitempty"`
	Checks        map[string]bool `json:"checks,omitempty"`
	Compensations []string        `json:"compensations,omitempty"`
	CaptureURL    string          `json:"capture_url,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// SessionTokenData is what the session JWT carries.
type SessionTokenData struct {
	SessionID string
	UserName  string
}
