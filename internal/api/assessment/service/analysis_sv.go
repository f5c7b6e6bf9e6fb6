package assessmentService

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"PhysioGolang/internal/api/assessment"
	"PhysioGolang/internal/api/catalog"
	"PhysioGolang/internal/api/movement"
	"PhysioGolang/internal/entity"
	contextPkg "PhysioGolang/pkg/context"
	"PhysioGolang/pkg/log"
	"PhysioGolang/pkg/movenet"

	"golang.org/x/net/context"
)

// captureDocument is the JSON snapshot archived to S3 for each analyzed
// capture: the raw keypoints plus the verdict they produced.
type captureDocument struct {
	TestID    string             `json:"test_id"`
	Keypoints []movenet.Keypoint `json:"keypoints"`
	Result    movenet.Result     `json:"result"`
	CreatedAt time.Time          `json:"created_at"`
}

// AnalyzeMovement scores a capture within an assessment session: it records
// the verdict in session state and Postgres, archives the capture to S3, and
// tells the client which recommended test is next. Unusable captures come
// back as Success false without touching session state.
func (s *assessmentService) AnalyzeMovement(ctx context.Context, req assessment.SessionAnalyzeRequest) (*assessment.SessionAnalyzeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	session, err := s.getSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	test, ok := entity.TestByID(req.TestID)
	if !ok {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"test_id":    req.TestID,
		}).Warn("Analysis requested for unknown test")
		return nil, catalog.ErrTestNotFound
	}

	if len(session.RecommendedTests) > 0 && !containsString(session.RecommendedTests, req.TestID) {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"session_id": session.ID,
			"test_id":    req.TestID,
		}).Warn("Analysis requested for test outside the recommended plan")
		return nil, assessment.ErrTestNotRecommended
	}

	envelope, err := s.movementService.AnalyzeMovement(ctx, movement.AnalyzeRequest{
		TestID:    req.TestID,
		Keypoints: req.Keypoints,
	})
	if err != nil {
		return nil, err
	}

	if !envelope.Success {
		return &assessment.SessionAnalyzeResponse{
			Success:            false,
			Explanation:        envelope.Explanation,
			NextTest:           nextRecommendedTest(session),
			AssessmentComplete: allTestsCompleted(session),
		}, nil
	}

	result := *envelope.Results

	if session.TestResults == nil {
		session.TestResults = make(map[string]movenet.Result)
	}
	session.TestResults[req.TestID] = result
	if !containsString(session.CompletedTests, req.TestID) {
		session.CompletedTests = append(session.CompletedTests, req.TestID)
	}

	captureURL := s.archiveCapture(requestID, session.ID, req.TestID, req.Keypoints, result)

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	if err := s.archiveResult(ctx, session.ID, req.TestID, result, captureURL); err != nil {
		return nil, err
	}

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"session_id": session.ID,
		"test_id":    req.TestID,
		"pass":       result.Pass,
	}).Info("Recorded movement test result")

	return &assessment.SessionAnalyzeResponse{
		Success:            true,
		Explanation:        s.explanationResponse(ctx, requestID, test, result, envelope.Explanation),
		Results:            envelope.Results,
		NextTest:           nextRecommendedTest(session),
		AssessmentComplete: allTestsCompleted(session),
		CaptureURL:         captureURL,
	}, nil
}

// archiveCapture uploads the capture snapshot to S3 and returns its location.
// Archiving is best effort; a failed upload only costs the capture link.
func (s *assessmentService) archiveCapture(requestID, sessionID, testID string, kps []movenet.Keypoint, result movenet.Result) string {
	captureID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to generate capture ID")
		return ""
	}

	key := fmt.Sprintf("captures/%s/%s.json", sessionID, captureID)

	location, err := s.s3.UploadJSON(key, captureDocument{
		TestID:    testID,
		Keypoints: kps,
		Result:    result,
		CreatedAt: time.Now(),
	})
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"session_id": sessionID,
			"error":      err.Error(),
		}).Warn("Failed to archive capture to S3")
		return ""
	}

	return location
}

func (s *assessmentService) archiveResult(ctx context.Context, sessionID, testID string, result movenet.Result, captureURL string) error {
	repo, err := s.repository.NewClient(false)
	if err != nil {
		return err
	}

	resultID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		return err
	}

	return repo.Results.CreateResult(ctx, entity.AssessmentResult{
		ID:            resultID,
		SessionID:     sessionID,
		TestID:        testID,
		Passed:        result.Pass,
		Angle:         result.Angle,
		Depth:         result.Depth,
		Details:       result.Details,
		Checks:        result.Checks,
		Compensations: result.Compensations,
		CaptureURL:    captureURL,
		CreatedAt:     time.Now(),
	})
}

// explanationResponse writes Tara's feedback for a verdict, keeping the
// deterministic text when no LLM reply comes back.
func (s *assessmentService) explanationResponse(ctx context.Context, requestID string, test entity.MobilityTest, result movenet.Result, fallback string) string {
	resultsJSON, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fallback
	}

	prompt := fmt.Sprintf(explanationPromptTemplate, test.Name, test.Area, string(resultsJSON))

	text, err := s.generateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil && !errors.Is(err, errNoLLMConfigured) {
			s.log.WithFields(log.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Explanation generation failed, using canned response")
		}
		return fallback
	}

	return text
}

func nextRecommendedTest(session *entity.AssessmentSession) *assessment.RecommendedTest {
	for _, testID := range session.RecommendedTests {
		if containsString(session.CompletedTests, testID) {
			continue
		}
		if test, ok := entity.TestByID(testID); ok {
			return &assessment.RecommendedTest{
				ID:          test.ID,
				Name:        test.Name,
				Description: test.Description,
				YoutubeLink: test.YoutubeLink,
			}
		}
	}
	return nil
}
