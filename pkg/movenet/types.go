package movenet

import "fmt"

// Joint indexes a landmark inside the fixed 17-point MoveNet layout.
type Joint int

const (
	Nose Joint = iota
	LeftEye
	RightEye
	LeftEar
	RightEar
	LeftShoulder
	RightShoulder
	LeftElbow
	RightElbow
	LeftWrist
	RightWrist
	LeftHip
	RightHip
	LeftKnee
	RightKnee
	LeftAnkle
	RightAnkle
)

// NumKeypoints is the length every keypoint sequence must have.
const NumKeypoints = 17

var jointNames = [NumKeypoints]string{
	"nose",
	"left_eye",
	"right_eye",
	"left_ear",
	"right_ear",
	"left_shoulder",
	"right_shoulder",
	"left_elbow",
	"right_elbow",
	"left_wrist",
	"right_wrist",
	"left_hip",
	"right_hip",
	"left_knee",
	"right_knee",
	"left_ankle",
	"right_ankle",
}

var jointIndex = map[string]Joint{
	"nose":           Nose,
	"left_eye":       LeftEye,
	"right_eye":      RightEye,
	"left_ear":       LeftEar,
	"right_ear":      RightEar,
	"left_shoulder":  LeftShoulder,
	"right_shoulder": RightShoulder,
	"left_elbow":     LeftElbow,
	"right_elbow":    RightElbow,
	"left_wrist":     LeftWrist,
	"right_wrist":    RightWrist,
	"left_hip":       LeftHip,
	"right_hip":      RightHip,
	"left_knee":      LeftKnee,
	"right_knee":     RightKnee,
	"left_ankle":     LeftAnkle,
	"right_ankle":    RightAnkle,
}

func (j Joint) String() string {
	if j < 0 || int(j) >= NumKeypoints {
		return fmt.Sprintf("joint(%d)", int(j))
	}
	return jointNames[j]
}

// JointByName resolves a MoveNet landmark name to its index.
func JointByName(name string) (Joint, bool) {
	j, ok := jointIndex[name]
	return j, ok
}

// Keypoint is one detected body landmark in normalized image coordinates
// (origin top-left, smaller Y is higher). Position fields are pointers so
// an omitted coordinate is distinguishable from 0.0.
type Keypoint struct {
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
	Score *float64 `json:"score,omitempty"`
}

// Confidence returns the detection score, defaulting to 1.0 when the
// estimator omitted it.
func (k Keypoint) Confidence() float64 {
	if k.Score == nil {
		return 1.0
	}
	return *k.Score
}

func (k Keypoint) hasPosition() bool {
	return k.X != nil && k.Y != nil
}

// point must only be called on keypoints that passed validation.
func (k Keypoint) point() Point {
	return Point{X: *k.X, Y: *k.Y}
}

// Squat depth categories.
const (
	DepthAboveParallel = "Above parallel"
	DepthParallel      = "Parallel"
	DepthBelowParallel = "Below parallel"
)

// Sub-check keys used by composite analyzers.
const (
	CheckHeelLift    = "heel_lift"
	CheckKneeValgus  = "knee_valgus"
	CheckArmFall     = "arm_fall"
	CheckForwardLean = "forward_lean"
)

// Result is the verdict for one analyzed frame. Success and failure share
// the shape; Pass and Details carry the outcome either way.
type Result struct {
	Pass          bool            `json:"pass"`
	Angle         float64         `json:"angle,omitempty"`
	Depth         string          `json:"depth,omitempty"`
	Details       string          `json:"details,omitempty"`
	Checks        map[string]bool `json:"checks,omitempty"`
	Compensations []string        `json:"compensations,omitempty"`
}

// ValidateKeypoints reports why a keypoint sequence cannot be analyzed,
// or "" when it can. Analyze runs this before dispatching; callers that
// want to reject frames with a friendlier message may run it themselves.
func ValidateKeypoints(kps []Keypoint) string {
	if len(kps) == 0 {
		return "No keypoints provided"
	}
	if len(kps) != NumKeypoints {
		return fmt.Sprintf("Expected %d keypoints, got %d", NumKeypoints, len(kps))
	}
	for i, kp := range kps {
		if !kp.hasPosition() {
			return fmt.Sprintf("Invalid keypoint format at index %d", i)
		}
	}
	return ""
}
