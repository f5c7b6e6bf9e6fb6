package assessmentService

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"PhysioGolang/internal/api/assessment"
	"PhysioGolang/internal/entity"
	contextPkg "PhysioGolang/pkg/context"
	jwtPkg "PhysioGolang/pkg/jwt"
	"PhysioGolang/pkg/log"
	"PhysioGolang/pkg/movenet"
	"PhysioGolang/pkg/nlp"
	"PhysioGolang/pkg/redis"

	"golang.org/x/net/context"
)

// StartSession opens a fresh assessment: a new session in Redis, its archive
// row in Postgres, and a session token scoped to it. Resuming a known session
// skips the greeting instead of starting over.
func (s *assessmentService) StartSession(ctx context.Context, req assessment.StartSessionRequest) (*assessment.StartSessionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.SessionID != "" {
		session, err := s.getSession(ctx, req.SessionID)
		if err == nil && session.GreetingSent {
			s.log.WithFields(log.Fields{
				"request_id": requestID,
				"session_id": session.ID,
			}).Debug("Session already greeted, resuming")

			token, expiresAt, err := s.issueSessionToken(session)
			if err != nil {
				return nil, err
			}

			if err := s.saveSession(ctx, session); err != nil {
				return nil, err
			}

			return &assessment.StartSessionResponse{
				SessionID: session.ID,
				Token:     token,
				ExpiresAt: expiresAt,
				Message:   duplicateGreetingMessage,
				State:     deriveState(session),
			}, nil
		}
	}

	now := time.Now()

	sessionID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate session ID")
		return nil, err
	}

	session := &entity.AssessmentSession{
		ID:             sessionID,
		UserName:       req.UserName,
		SessionStarted: true,
		GreetingSent:   true,
		TestResults:    make(map[string]movenet.Result),
		CreatedAt:      now,
	}

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	repo, err := s.repository.NewClient(false)
	if err != nil {
		return nil, err
	}

	rowID, err := s.utils.NewULIDFromTimestamp(now)
	if err != nil {
		return nil, err
	}

	if err := repo.Assessments.CreateAssessment(ctx, entity.Assessment{
		ID:        rowID,
		SessionID: sessionID,
		UserName:  req.UserName,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.issueSessionToken(session)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to issue session token")
		return nil, err
	}

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"session_id": sessionID,
	}).Info("Assessment session started")

	return &assessment.StartSessionResponse{
		SessionID: sessionID,
		Token:     token,
		ExpiresAt: expiresAt,
		Message:   greetingMessage,
		State:     deriveState(session),
	}, nil
}

// ProcessProblemAreas reads the user's free-text message, detects which pain
// areas it names, and queues the matching movement tests. A message naming no
// known area only asks for clarification.
func (s *assessmentService) ProcessProblemAreas(ctx context.Context, req assessment.MessageRequest) (*assessment.ProblemAreasResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	session, err := s.getSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	session.UserConcerns = req.Message

	detections, err := s.painDetector.DetectPainAreas(req.Message)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Pain area detection failed")
		return nil, err
	}

	if len(detections) == 0 {
		if err := s.saveSession(ctx, session); err != nil {
			return nil, err
		}

		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"session_id": session.ID,
		}).Debug("No pain area detected, asking for clarification")

		return &assessment.ProblemAreasResponse{
			Message:          clarificationMessage,
			ProblemAreas:     []string{},
			RecommendedTests: []assessment.RecommendedTest{},
			State:            deriveState(session),
		}, nil
	}

	areas := make([]string, 0, len(detections))
	for _, detection := range detections {
		areas = append(areas, detection.Area)
	}
	session.ProblemAreas = areas

	recommended := recommendedTestsForAreas(areas)
	testIDs := make([]string, 0, len(recommended))
	for _, test := range recommended {
		testIDs = append(testIDs, test.ID)
	}
	session.RecommendedTests = testIDs

	painDetails, err := s.painExtractor.ExtractPainDetails(req.Message)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Pain detail extraction failed")
		painDetails = nil
	}

	message := s.empathyResponse(ctx, requestID, detections[0].Area, req.Message, painDetails)

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	repo, err := s.repository.NewClient(false)
	if err != nil {
		return nil, err
	}

	if err := repo.Assessments.UpdateAssessment(ctx, entity.Assessment{
		SessionID:    session.ID,
		UserConcerns: session.UserConcerns,
		ProblemAreas: session.ProblemAreas,
	}); err != nil {
		return nil, err
	}

	s.log.WithFields(log.Fields{
		"request_id":    requestID,
		"session_id":    session.ID,
		"problem_areas": areas,
		"tests":         len(testIDs),
	}).Info("Detected problem areas")

	return &assessment.ProblemAreasResponse{
		Message:          message,
		ProblemAreas:     areas,
		RecommendedTests: recommended,
		PainDetails:      painDetails,
		State:            deriveState(session),
	}, nil
}

// empathyResponse writes Tara's reply to the user's concern, generated by the
// configured LLM and falling back to the canned per-area reply. Either way
// the movement test call-to-action is appended.
func (s *assessmentService) empathyResponse(ctx context.Context, requestID string, primaryArea string, userMessage string, details *nlp.PainDetails) string {
	prompt := fmt.Sprintf(problemAreasPromptTemplate, primaryArea, userMessage, primaryArea)
	if line := painDetailsPromptLine(details); line != "" {
		prompt += "\n\n" + line
	}

	text, err := s.generateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil && !errors.Is(err, errNoLLMConfigured) {
			s.log.WithFields(log.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Empathy generation failed, using canned response")
		}
		text = fallbackEmpathyResponse(primaryArea)
	}

	return text + testMessageSuffix
}

// painDetailsPromptLine condenses extracted pain details into one prompt line
// so the generated reply can acknowledge them.
func painDetailsPromptLine(details *nlp.PainDetails) string {
	if details == nil {
		return ""
	}

	var parts []string
	if details.Severity > 0 {
		parts = append(parts, fmt.Sprintf("severity %.0f/10", details.Severity))
	}
	if details.Quality != "" && details.Quality != "unknown" {
		parts = append(parts, "quality "+details.Quality)
	}
	if details.Duration != "" {
		parts = append(parts, "duration "+details.Duration)
	}
	if len(details.Triggers) > 0 {
		parts = append(parts, "triggered by "+strings.Join(details.Triggers, ", "))
	}
	if len(parts) == 0 {
		return ""
	}

	return "Known pain details: " + strings.Join(parts, "; ") + "."
}

// recommendedTestsForAreas maps detected pain areas to catalog tests,
// preserving detection order and dropping duplicates.
func recommendedTestsForAreas(areas []string) []assessment.RecommendedTest {
	var recommended []assessment.RecommendedTest
	seen := make(map[string]bool)

	for _, area := range areas {
		for _, testArea := range entity.PainAreaTests[area] {
			for _, test := range entity.TestsByArea(testArea) {
				if seen[test.ID] {
					continue
				}
				seen[test.ID] = true
				recommended = append(recommended, assessment.RecommendedTest{
					ID:          test.ID,
					Name:        test.Name,
					Description: test.Description,
					YoutubeLink: test.YoutubeLink,
				})
			}
		}
	}

	return recommended
}

func (s *assessmentService) getSession(ctx context.Context, sessionID string) (*entity.AssessmentSession, error) {
	var session entity.AssessmentSession
	if err := s.redis.GetJSON(ctx, sessionKey(sessionID), &session); err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			return nil, assessment.ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// saveSession writes the session back and refreshes its TTL, so activity
// keeps a session alive.
func (s *assessmentService) saveSession(ctx context.Context, session *entity.AssessmentSession) error {
	session.LastActivity = time.Now()
	return s.redis.SetJSON(ctx, sessionKey(session.ID), session, sessionTTL())
}

func (s *assessmentService) issueSessionToken(session *entity.AssessmentSession) (string, int64, error) {
	return jwtPkg.Sign(map[string]interface{}{
		"session_id": session.ID,
		"user_name":  session.UserName,
	}, sessionTTL())
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("assessment:session:%s", sessionID)
}

func sessionTTL() time.Duration {
	hours, err := strconv.Atoi(os.Getenv("SESSION_TTL_HOURS"))
	if err != nil || hours <= 0 {
		hours = 24
	}
	return time.Duration(hours) * time.Hour
}

func deriveState(session *entity.AssessmentSession) string {
	switch {
	case session.Routine != nil || allTestsCompleted(session):
		return entity.StateRoutineReady
	case len(session.ProblemAreas) > 0:
		return entity.StateTesting
	default:
		return entity.StateAwaitingProblemAreas
	}
}

func allTestsCompleted(session *entity.AssessmentSession) bool {
	if len(session.RecommendedTests) == 0 {
		return false
	}
	for _, testID := range session.RecommendedTests {
		if !containsString(session.CompletedTests, testID) {
			return false
		}
	}
	return true
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
