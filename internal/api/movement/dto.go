package movement

import "PhysioGolang/pkg/movenet"

type AnalyzeRequest struct {
	TestID    string             `json:"test_id" validate:"required"`
	Keypoints []movenet.Keypoint `json:"keypoints"`
}

// AnalyzeResponse is the envelope every analysis path returns. Success false
// means the capture itself was unusable; Explanation then carries a coaching
// message instead of a verdict.
type AnalyzeResponse struct {
	Success     bool            `json:"success"`
	Explanation string          `json:"explanation,omitempty"`
	Results     *movenet.Result `json:"results,omitempty"`
}

// LiveFrame is one inbound JSON message on the live analysis socket. A frame
// without keypoints only selects the test for the binary frames that follow.
type LiveFrame struct {
	TestID    string             `json:"test_id"`
	Keypoints []movenet.Keypoint `json:"keypoints,omitempty"`
}

// LiveReady acknowledges a test selection on the live socket.
type LiveReady struct {
	Status string `json:"status"`
	TestID string `json:"test_id"`
}
