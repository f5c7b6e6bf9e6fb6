package assessmentService

import (
	"errors"
	"fmt"
	"strings"

	"PhysioGolang/internal/api/assessment"
	"PhysioGolang/internal/entity"
	contextPkg "PhysioGolang/pkg/context"
	"PhysioGolang/pkg/log"

	"golang.org/x/net/context"
)

// GenerateRoutine builds the personalized exercise routine from the session's
// failed tests, falling back to the detected problem areas and finally to the
// default daily flow. Generating twice returns the stored routine.
func (s *assessmentService) GenerateRoutine(ctx context.Context, sessionID string) (*assessment.RoutineResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Routine != nil {
		return &assessment.RoutineResponse{
			Message: session.Routine.Explanation,
			Routine: session.Routine,
			State:   deriveState(session),
		}, nil
	}

	if len(session.CompletedTests) == 0 {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"session_id": session.ID,
		}).Warn("Routine requested before any completed test")
		return nil, assessment.ErrRoutineNotReady
	}

	exercises := exercisesForAreas(failedTestAreas(session))
	if len(exercises) == 0 {
		exercises = exercisesForAreas(session.ProblemAreas)
	}
	if len(exercises) == 0 {
		exercises = entity.DefaultExercises
	}

	routine := &entity.Routine{
		Explanation: s.routineResponseText(ctx, requestID, session),
		Exercises:   exercises,
	}
	session.Routine = routine

	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"session_id": session.ID,
		"exercises":  len(exercises),
	}).Info("Generated personalized routine")

	return &assessment.RoutineResponse{
		Message: routine.Explanation,
		Routine: routine,
		State:   deriveState(session),
	}, nil
}

// ShareRoutine delivers the generated routine over WhatsApp or email.
func (s *assessmentService) ShareRoutine(ctx context.Context, sessionID string, req assessment.ShareRoutineRequest) (*assessment.ShareRoutineResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	session, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Routine == nil {
		return nil, assessment.ErrRoutineNotReady
	}

	routineText := formatRoutineText(session)

	switch req.Channel {
	case assessment.ShareChannelWhatsapp:
		if s.whatsapp == nil || !s.whatsapp.IsConnected() {
			s.log.WithFields(log.Fields{
				"request_id": requestID,
				"session_id": session.ID,
			}).Warn("WhatsApp share requested but client is not connected")
			return nil, assessment.ErrShareChannelUnavailable
		}
		if err := s.whatsapp.SendMessage(ctx, req.PhoneNumber, routineText); err != nil {
			s.log.WithFields(log.Fields{
				"request_id": requestID,
				"session_id": session.ID,
				"error":      err.Error(),
			}).Error("Failed to send routine over WhatsApp")
			return nil, assessment.ErrShareChannelUnavailable
		}
	case assessment.ShareChannelEmail:
		if err := s.smtp.SendRoutine(req.Email, routineText); err != nil {
			s.log.WithFields(log.Fields{
				"request_id": requestID,
				"session_id": session.ID,
				"error":      err.Error(),
			}).Error("Failed to email routine")
			return nil, assessment.ErrShareChannelUnavailable
		}
	default:
		return nil, assessment.ErrInvalidShareChannel
	}

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"session_id": session.ID,
		"channel":    req.Channel,
	}).Info("Shared routine")

	return &assessment.ShareRoutineResponse{
		Message: routineSharedMessage,
		Channel: req.Channel,
	}, nil
}

// GetResults returns the archived verdicts for a session from Postgres, with
// presigned links to the S3 captures where one was stored.
func (s *assessmentService) GetResults(ctx context.Context, sessionID string) (*assessment.ResultsResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.repository.NewClient(false)
	if err != nil {
		return nil, err
	}

	assessmentRow, err := repo.Assessments.GetAssessmentBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	results, err := repo.Results.GetResultsBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	records := make([]assessment.ResultRecord, 0, len(results))
	for _, result := range results {
		record := assessment.ResultRecord{
			TestID:        result.TestID,
			TestName:      result.TestID,
			Passed:        result.Passed,
			Angle:         result.Angle,
			Depth:         result.Depth,
			Details:       result.Details,
			Checks:        result.Checks,
			Compensations: result.Compensations,
			CompletedAt:   result.CreatedAt,
		}
		if test, ok := entity.TestByID(result.TestID); ok {
			record.TestName = test.Name
		}
		if result.CaptureURL != "" {
			presigned, err := s.s3.PresignUrl(result.CaptureURL)
			if err != nil {
				s.log.WithFields(log.Fields{
					"request_id": requestID,
					"error":      err.Error(),
				}).Warn("Failed to presign capture URL")
			} else {
				record.CaptureURL = presigned
			}
		}
		records = append(records, record)
	}

	return &assessment.ResultsResponse{
		SessionID:    sessionID,
		UserName:     assessmentRow.UserName,
		UserConcerns: assessmentRow.UserConcerns,
		ProblemAreas: assessmentRow.ProblemAreas,
		Results:      records,
		Total:        len(records),
	}, nil
}

// failedTestAreas lists the catalog areas of failed tests in completion
// order, without duplicates.
func failedTestAreas(session *entity.AssessmentSession) []string {
	var areas []string
	for _, testID := range session.CompletedTests {
		result, ok := session.TestResults[testID]
		if !ok || result.Pass {
			continue
		}
		if test, found := entity.TestByID(testID); found && !containsString(areas, test.Area) {
			areas = append(areas, test.Area)
		}
	}
	return areas
}

func exercisesForAreas(areas []string) []entity.Exercise {
	var exercises []entity.Exercise
	for _, area := range areas {
		exercises = append(exercises, entity.ExercisesForArea(area)...)
	}
	return exercises
}

func (s *assessmentService) routineResponseText(ctx context.Context, requestID string, session *entity.AssessmentSession) string {
	concerns := session.UserConcerns
	if concerns == "" {
		concerns = "General mobility"
	}

	areas := strings.Join(session.ProblemAreas, ", ")
	if areas == "" {
		areas = "general mobility"
	}

	prompt := fmt.Sprintf(routinePromptTemplate, areas, concerns)

	text, err := s.generateText(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil && !errors.Is(err, errNoLLMConfigured) {
			s.log.WithFields(log.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Routine explanation generation failed, using canned response")
		}
		return routineFallbackMessage
	}

	return text
}

// formatRoutineText renders the routine as a plain-text message for WhatsApp
// and email delivery.
func formatRoutineText(session *entity.AssessmentSession) string {
	var b strings.Builder

	if session.UserName != "" {
		fmt.Fprintf(&b, "Hi %s!\n\n", session.UserName)
	}

	b.WriteString(session.Routine.Explanation)
	b.WriteString("\n\nYour exercises:\n")

	for i, exercise := range session.Routine.Exercises {
		fmt.Fprintf(&b, "\n%d. %s (%s)\n   %s\n   %s\n",
			i+1, exercise.Name, exercise.Duration, exercise.Description, exercise.Sets)
	}

	b.WriteString("\nWith care,\nTara")

	return b.String()
}
