package movenet

import (
	"math"
	"reflect"
	"testing"
)

func fp(v float64) *float64 { return &v }

func kpAt(x, y, score float64) Keypoint {
	return Keypoint{X: fp(x), Y: fp(y), Score: fp(score)}
}

// neutralFrame returns a full 17-point frame with every joint parked at
// the image center. Tests move only the joints they care about.
func neutralFrame() []Keypoint {
	kps := make([]Keypoint, NumKeypoints)
	for i := range kps {
		kps[i] = kpAt(0.5, 0.5, 0.9)
	}
	return kps
}

// shoulderFrame poses the left arm raised to deg degrees of flexion,
// measured at the shoulder between the hip below and the wrist. The arm
// is straight and the ear sits well above the shoulder, so no
// compensation fires unless a test repositions those joints.
func shoulderFrame(deg float64) []Keypoint {
	kps := neutralFrame()
	rad := deg * math.Pi / 180

	kps[LeftShoulder] = kpAt(0.5, 0.5, 0.9)
	kps[LeftHip] = kpAt(0.5, 0.8, 0.9)
	kps[LeftEar] = kpAt(0.5, 0.35, 0.9)
	kps[LeftElbow] = kpAt(0.5+0.15*math.Sin(rad), 0.5+0.15*math.Cos(rad), 0.9)
	kps[LeftWrist] = kpAt(0.5+0.3*math.Sin(rad), 0.5+0.3*math.Cos(rad), 0.9)
	return kps
}

// hipRotationFrame angles the left shank deg degrees away from the
// vertical reference above the knee.
func hipRotationFrame(deg float64) []Keypoint {
	kps := neutralFrame()
	rad := deg * math.Pi / 180

	kps[LeftKnee] = kpAt(0.5, 0.5, 0.9)
	kps[LeftAnkle] = kpAt(0.5+0.3*math.Sin(rad), 0.5-0.3*math.Cos(rad), 0.9)
	return kps
}

// squatFrame poses a clean overhead squat: heels planted, knee tracking
// midway between ankle and hip, wrist held high, torso upright.
func squatFrame() []Keypoint {
	kps := neutralFrame()
	kps[LeftAnkle] = kpAt(0.4, 0.9, 0.9)
	kps[LeftKnee] = kpAt(0.5, 0.6, 0.9)
	kps[LeftHip] = kpAt(0.6, 0.57, 0.9)
	kps[LeftShoulder] = kpAt(0.5, 0.35, 0.9)
	kps[LeftWrist] = kpAt(0.5, 0.1, 0.9)
	return kps
}

func TestAnalyzeRejectsBadFrames(t *testing.T) {
	missingY := neutralFrame()
	missingY[3].Y = nil

	cases := []struct {
		name    string
		kps     []Keypoint
		details string
	}{
		{"nil slice", nil, "No keypoints provided"},
		{"empty slice", []Keypoint{}, "No keypoints provided"},
		{"wrong length", neutralFrame()[:5], "Expected 17 keypoints, got 5"},
		{"missing coordinate", missingY, "Invalid keypoint format at index 3"},
	}

	for _, tc := range cases {
		got := Analyze("shoulder_flexion", tc.kps)
		if got.Pass {
			t.Errorf("%s: expected failing result", tc.name)
		}
		if got.Details != tc.details {
			t.Errorf("%s: details = %q, want %q", tc.name, got.Details, tc.details)
		}
	}
}

func TestValidateKeypointsAcceptsFullFrame(t *testing.T) {
	if reason := ValidateKeypoints(neutralFrame()); reason != "" {
		t.Fatalf("unexpected rejection: %q", reason)
	}
}

func TestAnalyzeUnknownTestPasses(t *testing.T) {
	for _, testID := range []string{"spine_flexion", "balance", "ankle_dorsiflexion"} {
		got := Analyze(testID, neutralFrame())
		if !got.Pass {
			t.Errorf("%s: expected permissive pass", testID)
		}
		if got.Details != "Test completed" {
			t.Errorf("%s: details = %q, want %q", testID, got.Details, "Test completed")
		}
		if got.Checks != nil || got.Angle != 0 {
			t.Errorf("%s: expected bare result, got %+v", testID, got)
		}
	}
}

func TestAnalyzeDispatchesByTypeSuffix(t *testing.T) {
	frame := squatFrame()

	direct := Analyze("overhead_squat", frame)
	prefixed := Analyze("functional_overhead_squat", frame)

	if !reflect.DeepEqual(direct, prefixed) {
		t.Fatalf("suffix dispatch diverged: %+v vs %+v", direct, prefixed)
	}
	if prefixed.Checks == nil {
		t.Fatal("prefixed ID did not reach the squat analyzer")
	}
}

func TestShoulderFlexionVerdict(t *testing.T) {
	cases := []struct {
		deg  float64
		pass bool
	}{
		{180, true},
		{175, true},
		{170.01, true},
		{169.9, false},
		{120, false},
	}

	for _, tc := range cases {
		got := Analyze("shoulder_flexion", shoulderFrame(tc.deg))
		if got.Pass != tc.pass {
			t.Errorf("%.2f degrees: pass = %v, want %v (angle %.4f)", tc.deg, got.Pass, tc.pass, got.Angle)
		}
		if math.Abs(got.Angle-tc.deg) > 0.01 {
			t.Errorf("%.2f degrees: measured %.4f", tc.deg, got.Angle)
		}
	}
}

func TestShoulderFlexionCleanFormHasNoCompensations(t *testing.T) {
	got := Analyze("shoulder_flexion", shoulderFrame(175))
	if len(got.Compensations) != 0 {
		t.Fatalf("unexpected compensations: %v", got.Compensations)
	}
}

func TestShoulderFlexionDetectsShrug(t *testing.T) {
	kps := shoulderFrame(175)
	kps[LeftEar] = kpAt(0.5, 0.45, 0.9)

	got := Analyze("shoulder_flexion", kps)
	if !got.Pass {
		t.Fatal("compensations must not gate the angle verdict")
	}
	if len(got.Compensations) != 1 || got.Compensations[0] != "Shoulder shrugging detected" {
		t.Fatalf("compensations = %v", got.Compensations)
	}
}

func TestShoulderFlexionDetectsElbowBend(t *testing.T) {
	kps := shoulderFrame(175)
	kps[LeftElbow] = kpAt(0.3, 0.4, 0.9)

	got := Analyze("shoulder_flexion", kps)
	if len(got.Compensations) != 1 || got.Compensations[0] != "Elbow bending detected" {
		t.Fatalf("compensations = %v", got.Compensations)
	}
}

func TestHipInternalRotationVerdict(t *testing.T) {
	cases := []struct {
		deg  float64
		pass bool
	}{
		{45, true},
		{40, true},
		{35.01, true},
		{34.9, false},
		{20, false},
	}

	for _, tc := range cases {
		got := Analyze("hip_internal_rotation", hipRotationFrame(tc.deg))
		if got.Pass != tc.pass {
			t.Errorf("%.2f degrees: pass = %v, want %v (angle %.4f)", tc.deg, got.Pass, tc.pass, got.Angle)
		}
		if math.Abs(got.Angle-tc.deg) > 0.01 {
			t.Errorf("%.2f degrees: measured %.4f", tc.deg, got.Angle)
		}
		if got.Details != "Normal range: 35-45 degrees" {
			t.Errorf("details = %q", got.Details)
		}
	}
}

func TestOverheadSquatCleanFormPasses(t *testing.T) {
	got := Analyze("overhead_squat", squatFrame())

	if !got.Pass {
		t.Fatalf("clean squat failed: %+v", got)
	}
	if got.Depth != DepthParallel {
		t.Errorf("depth = %q, want %q", got.Depth, DepthParallel)
	}
	for _, key := range []string{CheckHeelLift, CheckKneeValgus, CheckArmFall, CheckForwardLean} {
		flagged, ok := got.Checks[key]
		if !ok {
			t.Errorf("check %q missing from result", key)
		}
		if flagged {
			t.Errorf("check %q unexpectedly flagged", key)
		}
	}
}

func TestOverheadSquatDepthDoesNotGateVerdict(t *testing.T) {
	cases := []struct {
		hipY  float64
		depth string
	}{
		{0.75, DepthAboveParallel},
		{0.57, DepthParallel},
		{0.40, DepthBelowParallel},
	}

	for _, tc := range cases {
		kps := squatFrame()
		kps[LeftHip] = kpAt(0.6, tc.hipY, 0.9)

		got := Analyze("overhead_squat", kps)
		if got.Depth != tc.depth {
			t.Errorf("hip y %.2f: depth = %q, want %q", tc.hipY, got.Depth, tc.depth)
		}
		if !got.Pass {
			t.Errorf("hip y %.2f: depth category must not fail the squat", tc.hipY)
		}
	}
}

func TestOverheadSquatHeelLift(t *testing.T) {
	kps := squatFrame()
	kps[LeftAnkle] = kpAt(0.4, 0.9, 0.3)

	got := Analyze("overhead_squat", kps)
	if got.Pass || !got.Checks[CheckHeelLift] {
		t.Fatalf("low ankle confidence not flagged: %+v", got)
	}
}

func TestOverheadSquatHeelLiftDefaultsToConfident(t *testing.T) {
	kps := squatFrame()
	kps[LeftAnkle] = Keypoint{X: fp(0.4), Y: fp(0.9)}

	got := Analyze("overhead_squat", kps)
	if got.Checks[CheckHeelLift] {
		t.Fatal("missing score must default to full confidence")
	}
}

func TestOverheadSquatKneeValgus(t *testing.T) {
	// Midline between ankle x 0.4 and hip x 0.6 is 0.5; the tolerance
	// band is 0.05 either side.
	cases := []struct {
		kneeX   float64
		flagged bool
	}{
		{0.56, true},
		{0.54, false},
		{0.44, true},
		{0.46, false},
	}

	for _, tc := range cases {
		kps := squatFrame()
		kps[LeftKnee] = kpAt(tc.kneeX, 0.6, 0.9)

		got := Analyze("overhead_squat", kps)
		if got.Checks[CheckKneeValgus] != tc.flagged {
			t.Errorf("knee x %.2f: valgus = %v, want %v", tc.kneeX, got.Checks[CheckKneeValgus], tc.flagged)
		}
		if got.Pass == tc.flagged {
			t.Errorf("knee x %.2f: pass = %v with valgus = %v", tc.kneeX, got.Pass, tc.flagged)
		}
	}
}

func TestOverheadSquatArmFall(t *testing.T) {
	kps := squatFrame()
	kps[LeftWrist] = kpAt(0.5, 0.3, 0.9)

	got := Analyze("overhead_squat", kps)
	if got.Pass || !got.Checks[CheckArmFall] {
		t.Fatalf("dropped wrist not flagged: %+v", got)
	}
}

func TestOverheadSquatForwardLean(t *testing.T) {
	kps := squatFrame()
	kps[LeftShoulder] = kpAt(0.6, 0.35, 0.9)

	got := Analyze("overhead_squat", kps)
	if got.Pass || !got.Checks[CheckForwardLean] {
		t.Fatalf("forward lean not flagged: %+v", got)
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	frames := map[string][]Keypoint{
		"shoulder_flexion":      shoulderFrame(172),
		"hip_internal_rotation": hipRotationFrame(38),
		"overhead_squat":        squatFrame(),
	}

	for testID, kps := range frames {
		first := Analyze(testID, kps)
		second := Analyze(testID, kps)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: repeated analysis diverged: %+v vs %+v", testID, first, second)
		}
	}
}

func TestAnalyzeDoesNotMutateInput(t *testing.T) {
	kps := squatFrame()
	before := make([]float64, 0, NumKeypoints*2)
	for _, kp := range kps {
		before = append(before, *kp.X, *kp.Y)
	}

	Analyze("overhead_squat", kps)

	for i, kp := range kps {
		if *kp.X != before[i*2] || *kp.Y != before[i*2+1] {
			t.Fatalf("keypoint %d moved during analysis", i)
		}
	}
}
