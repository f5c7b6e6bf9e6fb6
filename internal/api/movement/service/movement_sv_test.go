package movementService

import (
	"PhysioGolang/internal/api/movement"
	"PhysioGolang/pkg/movenet"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type stubPoseClient struct {
	keypoints []movenet.Keypoint
	err       error
	calls     int
}

func (s *stubPoseClient) EstimatePose(frame []byte) ([]movenet.Keypoint, error) {
	s.calls++
	return s.keypoints, s.err
}

func (s *stubPoseClient) IsConnected() bool { return true }
func (s *stubPoseClient) Reconnect() error  { return nil }
func (s *stubPoseClient) CloseConnections() {}

type stubFrameChecker struct {
	err error
}

func (s *stubFrameChecker) NewULIDFromTimestamp(t time.Time) (string, error) {
	return "01ARZ3NDEKTSV4RRFFQ69G5FAV", nil
}

func (s *stubFrameChecker) ValidateFrame(frame []byte) error { return s.err }

func newTestService(pose *stubPoseClient, checker *stubFrameChecker) IMovementService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewMovementService(logger, pose, checker)
}

// fullFrame parks every joint at the image center with solid confidence,
// enough to clear keypoint validation.
func fullFrame() []movenet.Keypoint {
	kps := make([]movenet.Keypoint, movenet.NumKeypoints)
	for i := range kps {
		x, y, score := 0.5, 0.5, 0.9
		kps[i] = movenet.Keypoint{X: &x, Y: &y, Score: &score}
	}
	return kps
}

func TestAnalyzeMovementEmptyKeypoints(t *testing.T) {
	svc := newTestService(&stubPoseClient{}, &stubFrameChecker{})

	resp, err := svc.AnalyzeMovement(context.Background(), movement.AnalyzeRequest{
		TestID: "shoulder_flexion",
	})
	if err != nil {
		t.Fatalf("AnalyzeMovement: %v", err)
	}

	if resp.Success {
		t.Error("success = true, want false for an empty capture")
	}
	if resp.Explanation != emptyKeypointsMessage {
		t.Errorf("explanation = %q, want the empty capture coaching message", resp.Explanation)
	}
	if resp.Results != nil {
		t.Errorf("results = %+v, want nil", resp.Results)
	}
}

func TestAnalyzeMovementMalformedKeypoints(t *testing.T) {
	svc := newTestService(&stubPoseClient{}, &stubFrameChecker{})

	resp, err := svc.AnalyzeMovement(context.Background(), movement.AnalyzeRequest{
		TestID:    "shoulder_flexion",
		Keypoints: fullFrame()[:5],
	})
	if err != nil {
		t.Fatalf("AnalyzeMovement: %v", err)
	}

	if resp.Success {
		t.Error("success = true, want false for a partial capture")
	}
	if resp.Explanation != malformedKeypointsMessage {
		t.Errorf("explanation = %q, want the partial capture coaching message", resp.Explanation)
	}
	if resp.Results != nil {
		t.Errorf("results = %+v, want nil", resp.Results)
	}
}

func TestAnalyzeMovementCompletesTest(t *testing.T) {
	svc := newTestService(&stubPoseClient{}, &stubFrameChecker{})

	resp, err := svc.AnalyzeMovement(context.Background(), movement.AnalyzeRequest{
		TestID:    "ankle_dorsiflexion",
		Keypoints: fullFrame(),
	})
	if err != nil {
		t.Fatalf("AnalyzeMovement: %v", err)
	}

	if !resp.Success {
		t.Fatalf("success = false, explanation %q", resp.Explanation)
	}
	if resp.Results == nil || !resp.Results.Pass {
		t.Fatalf("results = %+v, want a passing verdict", resp.Results)
	}

	want := "You did beautifully on the Ankle Dorsiflexion Test!\n\n" +
		"• Test completed\n" +
		"• Your movement shows healthy range\n\n" +
		"Keep up the amazing progress!"
	if resp.Explanation != want {
		t.Errorf("explanation = %q, want %q", resp.Explanation, want)
	}
}

func TestProcessLiveFrameRejectsInvalidFrame(t *testing.T) {
	pose := &stubPoseClient{keypoints: fullFrame()}
	svc := newTestService(pose, &stubFrameChecker{err: errors.New("not an image")})

	resp, err := svc.ProcessLiveFrame("shoulder_flexion", []byte("junk"))
	if !errors.Is(err, movement.ErrInvalidFrame) {
		t.Fatalf("err = %v, want ErrInvalidFrame", err)
	}
	if resp != nil {
		t.Errorf("response = %+v, want nil", resp)
	}
	if pose.calls != 0 {
		t.Errorf("pose service called %d times for a rejected frame", pose.calls)
	}
}

func TestProcessLiveFramePoseServiceDown(t *testing.T) {
	pose := &stubPoseClient{err: errors.New("connection refused")}
	svc := newTestService(pose, &stubFrameChecker{})

	_, err := svc.ProcessLiveFrame("shoulder_flexion", []byte{0xFF, 0xD8, 0xFF})
	if !errors.Is(err, movement.ErrPoseServiceUnavailable) {
		t.Fatalf("err = %v, want ErrPoseServiceUnavailable", err)
	}
}

func TestProcessLiveFrameAnalyzesPose(t *testing.T) {
	pose := &stubPoseClient{keypoints: fullFrame()}
	svc := newTestService(pose, &stubFrameChecker{})

	resp, err := svc.ProcessLiveFrame("ankle_dorsiflexion", []byte{0xFF, 0xD8, 0xFF})
	if err != nil {
		t.Fatalf("ProcessLiveFrame: %v", err)
	}

	if !resp.Success {
		t.Fatalf("success = false, explanation %q", resp.Explanation)
	}
	if resp.Results == nil || !resp.Results.Pass {
		t.Fatalf("results = %+v, want a passing verdict", resp.Results)
	}
	if pose.calls != 1 {
		t.Errorf("pose service called %d times, want 1", pose.calls)
	}
}

func TestVerdictExplanationFailedTest(t *testing.T) {
	got := verdictExplanation("shoulder_flexion", movenet.Result{Pass: false, Angle: 120})

	want := "Great effort completing the Shoulder Flexion Test!\n\n" +
		"• Measured angle: 120 degrees\n" +
		"• This shows us exactly what to work on\n\n" +
		"Every test brings us closer to your perfect routine!"
	if got != want {
		t.Errorf("explanation = %q, want %q", got, want)
	}
}

func TestVerdictExplanationUnknownTestKeepsID(t *testing.T) {
	got := verdictExplanation("mystery_move", movenet.Result{Pass: true})

	want := "You did beautifully on the mystery_move!\n\n" +
		"• Movement captured cleanly\n" +
		"• Your movement shows healthy range\n\n" +
		"Keep up the amazing progress!"
	if got != want {
		t.Errorf("explanation = %q, want %q", got, want)
	}
}

func TestResultHighlightPreference(t *testing.T) {
	cases := []struct {
		name   string
		result movenet.Result
		want   string
	}{
		{"details first", movenet.Result{Details: "Normal range: 35-45 degrees", Depth: "deep", Angle: 40}, "Normal range: 35-45 degrees"},
		{"depth next", movenet.Result{Depth: "deep", Angle: 40}, "Squat depth: deep"},
		{"angle rounded", movenet.Result{Angle: 47.4}, "Measured angle: 47 degrees"},
		{"fallback", movenet.Result{}, "Movement captured cleanly"},
	}

	for _, tc := range cases {
		if got := resultHighlight(tc.result); got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
