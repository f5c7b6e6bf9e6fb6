package movenet

import "strings"

type analyzerFunc func(kps []Keypoint) Result

// Analyzers are registered under the check name their catalog entry
// carries. Tests without a geometric definition fall through to the
// permissive default in Analyze.
var analyzers = map[string]analyzerFunc{
	"shoulder_flexion":      analyzeShoulderFlexion,
	"hip_internal_rotation": analyzeHipInternalRotation,
	"overhead_squat":        analyzeOverheadSquat,
}

// Analyze scores one captured frame against the named mobility test.
// Malformed input never panics or errors; it comes back as a failed
// Result with the reason in Details. Test IDs resolve to an analyzer by
// exact name first, then by the test type after the leading body area
// ("functional_overhead_squat" runs the overhead_squat analyzer). IDs
// matching neither pass by default: tests that are judged visually have
// no geometric check to fail.
func Analyze(testID string, kps []Keypoint) Result {
	if reason := ValidateKeypoints(kps); reason != "" {
		return Result{Pass: false, Details: reason}
	}

	if fn, ok := analyzers[testID]; ok {
		return fn(kps)
	}
	if _, testType, found := strings.Cut(testID, "_"); found {
		if fn, ok := analyzers[testType]; ok {
			return fn(kps)
		}
	}

	return Result{Pass: true, Details: "Test completed"}
}

func analyzeShoulderFlexion(kps []Keypoint) Result {
	angle := Angle(kps[LeftHip].point(), kps[LeftShoulder].point(), kps[LeftWrist].point())

	return Result{
		Pass:          angle >= minFlexionAngle,
		Angle:         angle,
		Compensations: shoulderCompensations(kps),
	}
}

func analyzeHipInternalRotation(kps []Keypoint) Result {
	knee := kps[LeftKnee].point()
	ankle := kps[LeftAnkle].point()

	// A synthetic point directly above the knee stands in for the thigh
	// line, so the angle reads shank deviation from vertical.
	vertical := Point{X: knee.X, Y: knee.Y - 0.1}
	angle := Angle(vertical, knee, ankle)

	return Result{
		Pass:    angle >= minHipRotationAngle,
		Angle:   angle,
		Details: "Normal range: 35-45 degrees",
	}
}

func analyzeOverheadSquat(kps []Keypoint) Result {
	checks := map[string]bool{
		CheckHeelLift:    detectHeelLift(kps),
		CheckKneeValgus:  detectKneeValgus(kps),
		CheckArmFall:     detectArmFall(kps),
		CheckForwardLean: detectForwardLean(kps),
	}

	// Depth is informational; only the four form checks gate the verdict.
	pass := !checks[CheckHeelLift] && !checks[CheckKneeValgus] &&
		!checks[CheckArmFall] && !checks[CheckForwardLean]

	return Result{
		Pass:   pass,
		Depth:  squatDepth(kps),
		Checks: checks,
	}
}
