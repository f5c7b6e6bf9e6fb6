package entity

import "strings"

type MobilityTest struct {
	ID            string       `json:"id"`
	Area          string       `json:"area"`
	Type          string       `json:"type"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	MovenetCheck  string       `json:"movenet_check"`
	YoutubeLink   string       `json:"youtube_link"`
	PassCriteria  PassCriteria `json:"pass_criteria"`
	Compensations []string     `json:"common_compensations,omitempty"`
	CheckPoints   []string     `json:"check_points,omitempty"`
}

type PassCriteria struct {
	Angle       float64 `json:"angle,omitempty"`
	Distance    float64 `json:"distance,omitempty"`
	Description string  `json:"description"`
}

// MobilityAreas lists the catalog's body areas in presentation order.
var MobilityAreas = []string{"shoulder", "hip", "ankle", "spine", "functional"}

var MobilityTests = []MobilityTest{
	{
		ID:           "shoulder_flexion",
		Area:         "shoulder",
		Type:         "flexion",
		Name:         "Shoulder Flexion Test",
		Description:  "Raise your arms straight overhead",
		MovenetCheck: "shoulder_flexion",
		YoutubeLink:  "https://youtube.com/watch?v=PLACEHOLDER_SHOULDER_FLEXION",
		PassCriteria: PassCriteria{
			Angle:       170,
			Description: "Arms should reach near ears without arching back",
		},
		Compensations: []string{"Arching lower back", "Shrugging shoulders", "Bending elbows"},
	},
	{
		ID:           "shoulder_external_rotation",
		Area:         "shoulder",
		Type:         "external_rotation",
		Name:         "Shoulder External Rotation Test",
		Description:  "Elbow at 90°, rotate forearm outward",
		MovenetCheck: "shoulder_external_rotation",
		YoutubeLink:  "https://youtube.com/watch?v=PLACEHOLDER_SHOULDER_ER",
		PassCriteria: PassCriteria{
			Angle:       90,
			Description: "Forearm should reach 90° from starting position",
		},
	},
	{
		ID:           "shoulder_internal_rotation",
		Area:         "shoulder",
		Type:         "internal_rotation",
		Name:         "Shoulder Internal Rotation Test",
		Description:  "Hand behind back, reach up spine",
		MovenetCheck: "shoulder_internal_rotation",
		YoutubeLink:  "https://youtube.com/watch?v=PLACEHOLDER_SHOULDER_IR",
		PassCriteria: PassCriteria{
			Description: "Thumb should reach between shoulder blades",
		},
	},
	{
		ID:           "hip_internal_rotation",
		Area:         "hip",
		Type:         "internal_rotation",
		Name:         "Hip Internal Rotation Test",
		Description:  "Seated, rotate foot outward (knee stays still)",
		MovenetCheck: "hip_internal_rotation",
		YoutubeLink:  "https://youtube.com/watch?v=PLACEHOLDER_HIP_IR",
		PassCriteria: PassCriteria{
			Angle:       35,
			Description: "35-45° of internal rotation is normal",
		},
	},
	{
		ID:           "hip_external_rotation",
		Area:         "hip",
		Type:         "external_rotation",
		Name:         "Hip External Rotation Test",
		Description:  "Seated, rotate foot inward (knee stays still)",
		MovenetCheck: "hip_external_rotation",
		YoutubeLink:  "https://youtube.com/watch?v=PLACEHOLDER_HIP_ER",
		PassCriteria: PassCriteria{
			Angle:       45,
			Description: "45° of external rotation is normal",
		},
	},
	{
		ID:           "hip_flexion",
		Area:         "hip",
		Type:         "flexion",
		Name:         "Hip Flexion Test",
		Description:  "Lying down, bring knee to chest",
		MovenetCheck: "hip_flexion",
		YoutubeLink:  "https://youtube.com/watch?v=PLACEHOLDER_HIP_FLEXION",
		PassCriteria: PassCriteria{
			Angle:       120,
			Description: "Knee should come close to chest without opposite leg lifting",
		},
	},
	{
		ID:           "ankle_dorsiflexion",
		Area:         "ankle",
		Type:         "dorsiflexion",
		Name:         "Ankle Dorsiflexion Test",
		Description:  "Knee to wall test - how far can your toe be from wall?",
		MovenetCheck: "ankle_dorsiflexion",
		YoutubeLink:  "https://youtube.com/watch?v=PLACEHOLDER_ANKLE_DF",
		PassCriteria: PassCriteria{
			Distance:    10,
			Description: "Normal is 10-12cm from wall to toe",
		},
	},
	{
		ID:           "spine_flexion",
		Area:         "spine",
		Type:         "flexion",
		Name:         "Spine Flexion Test",
		Description:  "Standing forward bend",
		MovenetCheck: "spine_flexion",
		YoutubeLink:  "https://youtube.com/watch?v=PLACEHOLDER_SPINE_FLEXION",
		PassCriteria: PassCriteria{
			Description: "Fingertips should reach floor or within 10cm",
		},
	},
	{
		ID:           "spine_rotation",
		Area:         "spine",
		Type:         "rotation",
		Name:         "Thoracic Rotation Test",
		Description:  "Seated with stick across shoulders, rotate left and right",
		MovenetCheck: "thoracic_rotation",
		YoutubeLink:  "https://youtube.com/watch?v=PLACEHOLDER_THORACIC_ROT",
		PassCriteria: PassCriteria{
			Angle:       45,
			Description: "45° rotation each direction is normal",
		},
	},
	{
		ID:           "functional_overhead_squat",
		Area:         "functional",
		Type:         "overhead_squat",
		Name:         "Overhead Squat Assessment",
		Description:  "Arms overhead, perform full squat",
		MovenetCheck: "overhead_squat",
		YoutubeLink:  "https://youtube.com/watch?v=PLACEHOLDER_OVERHEAD_SQUAT",
		PassCriteria: PassCriteria{
			Description: "Heels stay down, knees track over toes, arms stay overhead, no excessive forward lean",
		},
		CheckPoints: []string{"heel_lift", "knee_valgus", "arm_fall", "forward_lean"},
	},
}

// PainAreaTests maps a detected pain area to the catalog areas whose
// tests get recommended for it.
var PainAreaTests = map[string][]string{
	"neck":       {"spine", "shoulder"},
	"shoulder":   {"shoulder"},
	"lower_back": {"spine", "hip"},
	"knee":       {"hip", "functional"},
	"ankle":      {"ankle", "functional"},
	"jaw":        {"spine"},
}

func TestsByArea(area string) []MobilityTest {
	var tests []MobilityTest
	for _, t := range MobilityTests {
		if t.Area == area {
			tests = append(tests, t)
		}
	}
	return tests
}

// TestByID resolves a catalog ID of the form <area>_<type>, splitting on
// the first underscore.
func TestByID(id string) (MobilityTest, bool) {
	area, testType, found := strings.Cut(id, "_")
	if !found {
		return MobilityTest{}, false
	}

	for _, t := range MobilityTests {
		if t.Area == area && t.Type == testType {
			return t, true
		}
	}
	return MobilityTest{}, false
}
