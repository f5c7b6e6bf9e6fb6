package movementService

import (
	"PhysioGolang/internal/api/movement"
	"PhysioGolang/internal/entity"
	contextPkg "PhysioGolang/pkg/context"
	"PhysioGolang/pkg/log"
	"PhysioGolang/pkg/movenet"
	"fmt"

	"golang.org/x/net/context"
)

// Coaching messages for unusable captures, kept in the assistant's voice so
// camera problems never read like stack traces to the user.
const (
	emptyKeypointsMessage = "I couldn't capture your movement properly!\n\n" +
		"• Don't worry - this happens sometimes\n" +
		"• Make sure you're well-lit and visible\n" +
		"• Let's try that test again\n" +
		"• I'm here to support you through this"

	malformedKeypointsMessage = "Let's try that movement test again, dear!\n\n" +
		"• The camera didn't capture all data\n" +
		"• Make sure your whole body is visible\n" +
		"• Take your time - no rush\n" +
		"• We'll get this right together!"
)

// AnalyzeMovement scores one captured frame against a movement test. Unusable
// keypoints come back as Success false with a coaching message, never as an
// error, so the client can always render the response directly.
func (s *movementService) AnalyzeMovement(ctx context.Context, req movement.AnalyzeRequest) (*movement.AnalyzeResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	response := s.buildEnvelope(req.TestID, req.Keypoints)
	if !response.Success {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"test_id":    req.TestID,
			"keypoints":  len(req.Keypoints),
		}).Warn("Could not analyze captured keypoints")
		return response, nil
	}

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"test_id":    req.TestID,
		"pass":       response.Results.Pass,
	}).Debug("Movement analysis completed")

	return response, nil
}

// ProcessLiveFrame runs pose estimation on a raw camera frame, then analyzes
// the detected keypoints against the given test.
func (s *movementService) ProcessLiveFrame(testID string, frame []byte) (*movement.AnalyzeResponse, error) {
	if err := s.utils.ValidateFrame(frame); err != nil {
		s.log.WithFields(log.Fields{
			"test_id": testID,
			"error":   err.Error(),
		}).Warn("Rejected live frame")
		return nil, movement.ErrInvalidFrame
	}

	keypoints, err := s.websocketPkg.EstimatePose(frame)
	if err != nil {
		s.log.WithFields(log.Fields{
			"test_id": testID,
			"error":   err.Error(),
		}).Error("Pose estimation failed")
		return nil, movement.ErrPoseServiceUnavailable
	}

	return s.buildEnvelope(testID, keypoints), nil
}

func (s *movementService) buildEnvelope(testID string, kps []movenet.Keypoint) *movement.AnalyzeResponse {
	if len(kps) == 0 {
		return &movement.AnalyzeResponse{
			Success:     false,
			Explanation: emptyKeypointsMessage,
		}
	}

	if movenet.ValidateKeypoints(kps) != "" {
		return &movement.AnalyzeResponse{
			Success:     false,
			Explanation: malformedKeypointsMessage,
		}
	}

	result := movenet.Analyze(testID, kps)

	return &movement.AnalyzeResponse{
		Success:     true,
		Explanation: verdictExplanation(testID, result),
		Results:     &result,
	}
}

// verdictExplanation builds encouraging feedback for a completed test in the
// assistant's message format.
func verdictExplanation(testID string, result movenet.Result) string {
	name := testID
	if test, ok := entity.TestByID(testID); ok {
		name = test.Name
	}

	if result.Pass {
		return fmt.Sprintf("You did beautifully on the %s!\n\n"+
			"• %s\n"+
			"• Your movement shows healthy range\n\n"+
			"Keep up the amazing progress!", name, resultHighlight(result))
	}

	return fmt.Sprintf("Great effort completing the %s!\n\n"+
		"• %s\n"+
		"• This shows us exactly what to work on\n\n"+
		"Every test brings us closer to your perfect routine!", name, resultHighlight(result))
}

func resultHighlight(result movenet.Result) string {
	switch {
	case result.Details != "":
		return result.Details
	case result.Depth != "":
		return "Squat depth: " + result.Depth
	case result.Angle > 0:
		return fmt.Sprintf("Measured angle: %.0f degrees", result.Angle)
	default:
		return "Movement captured cleanly"
	}
}
