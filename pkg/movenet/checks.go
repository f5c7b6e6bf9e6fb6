package movenet

import "math"

// Thresholds operate on normalized image coordinates and must stay in
// sync with the pass criteria published in the test catalog.
const (
	minFlexionAngle     = 170.0
	minHipRotationAngle = 35.0
	minElbowAngle       = 170.0
	heelLiftScoreFloor  = 0.5
	valgusTolerance     = 0.05
	armFallMargin       = 0.1
	forwardLeanMargin   = 0.15
	squatParallelBand   = 0.05
	shrugMargin         = 0.1
)

// detectHeelLift proxies heel lift with ankle confidence: a heel coming
// off the ground blurs the ankle and tanks its score. An approximation,
// not a geometric measurement.
func detectHeelLift(kps []Keypoint) bool {
	return kps[LeftAnkle].Confidence() < heelLiftScoreFloor
}

// detectKneeValgus compares the knee against the point midway between
// ankle and hip on the horizontal axis.
func detectKneeValgus(kps []Keypoint) bool {
	hip := kps[LeftHip].point()
	knee := kps[LeftKnee].point()
	ankle := kps[LeftAnkle].point()

	expected := ankle.X + 0.5*(hip.X-ankle.X)
	return math.Abs(knee.X-expected) > valgusTolerance
}

// detectArmFall flags a wrist that is not held well above the shoulder.
// Smaller Y is higher.
func detectArmFall(kps []Keypoint) bool {
	return *kps[LeftWrist].Y > *kps[LeftShoulder].Y-armFallMargin
}

func detectForwardLean(kps []Keypoint) bool {
	return *kps[LeftShoulder].X > *kps[LeftAnkle].X+forwardLeanMargin
}

func squatDepth(kps []Keypoint) string {
	hipY := *kps[LeftHip].Y
	kneeY := *kps[LeftKnee].Y

	switch {
	case hipY > kneeY:
		return DepthAboveParallel
	case hipY > kneeY-squatParallelBand:
		return DepthParallel
	default:
		return DepthBelowParallel
	}
}

// shoulderCompensations reports form breaks seen during overhead
// shoulder work.
func shoulderCompensations(kps []Keypoint) []string {
	var found []string

	if *kps[LeftShoulder].Y < *kps[LeftEar].Y+shrugMargin {
		found = append(found, "Shoulder shrugging detected")
	}

	elbowAngle := Angle(kps[LeftShoulder].point(), kps[LeftElbow].point(), kps[LeftWrist].point())
	if elbowAngle < minElbowAngle {
		found = append(found, "Elbow bending detected")
	}

	return found
}
