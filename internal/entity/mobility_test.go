package entity

import "testing"

func TestCatalogIDsResolve(t *testing.T) {
	seen := make(map[string]bool)

	for _, tt := range MobilityTests {
		if seen[tt.ID] {
			t.Errorf("duplicate catalog ID %q", tt.ID)
		}
		seen[tt.ID] = true

		if tt.ID != tt.Area+"_"+tt.Type {
			t.Errorf("%s: ID does not compose from area %q and type %q", tt.ID, tt.Area, tt.Type)
		}

		got, ok := TestByID(tt.ID)
		if !ok {
			t.Errorf("%s: not resolvable by ID", tt.ID)
			continue
		}
		if got.Name != tt.Name {
			t.Errorf("%s: resolved to %q", tt.ID, got.Name)
		}
	}
}

func TestCatalogEntriesComplete(t *testing.T) {
	known := make(map[string]bool, len(MobilityAreas))
	for _, area := range MobilityAreas {
		known[area] = true
	}

	for _, tt := range MobilityTests {
		if !known[tt.Area] {
			t.Errorf("%s: area %q missing from MobilityAreas", tt.ID, tt.Area)
		}
		if tt.Name == "" || tt.Description == "" {
			t.Errorf("%s: missing name or description", tt.ID)
		}
		if tt.MovenetCheck == "" {
			t.Errorf("%s: missing movenet check name", tt.ID)
		}
		if tt.YoutubeLink == "" {
			t.Errorf("%s: missing demonstration link", tt.ID)
		}
		if tt.PassCriteria.Description == "" {
			t.Errorf("%s: missing pass criteria description", tt.ID)
		}
	}
}

func TestCatalogAreaGrouping(t *testing.T) {
	counts := map[string]int{"shoulder": 3, "hip": 3, "ankle": 1, "spine": 2, "functional": 1}
	total := 0
	for area, want := range counts {
		got := len(TestsByArea(area))
		if got != want {
			t.Errorf("area %q: %d tests, want %d", area, got, want)
		}
		total += got
	}

	if total != len(MobilityTests) {
		t.Fatalf("area grouping covers %d tests, catalog has %d", total, len(MobilityTests))
	}
}

func TestCatalogThresholds(t *testing.T) {
	cases := []struct {
		id    string
		angle float64
	}{
		{"shoulder_flexion", 170},
		{"shoulder_external_rotation", 90},
		{"hip_internal_rotation", 35},
		{"hip_external_rotation", 45},
		{"hip_flexion", 120},
		{"spine_rotation", 45},
	}

	for _, tc := range cases {
		tt, ok := TestByID(tc.id)
		if !ok {
			t.Fatalf("%s: missing from catalog", tc.id)
		}
		if tt.PassCriteria.Angle != tc.angle {
			t.Errorf("%s: angle %v, want %v", tc.id, tt.PassCriteria.Angle, tc.angle)
		}
	}

	ankle, _ := TestByID("ankle_dorsiflexion")
	if ankle.PassCriteria.Distance != 10 {
		t.Errorf("ankle_dorsiflexion: distance %v, want 10", ankle.PassCriteria.Distance)
	}
}

func TestCatalogOverheadSquatCheckPoints(t *testing.T) {
	squat, ok := TestByID("functional_overhead_squat")
	if !ok {
		t.Fatal("functional_overhead_squat missing from catalog")
	}

	want := []string{"heel_lift", "knee_valgus", "arm_fall", "forward_lean"}
	if len(squat.CheckPoints) != len(want) {
		t.Fatalf("check points = %v", squat.CheckPoints)
	}
	for i, cp := range want {
		if squat.CheckPoints[i] != cp {
			t.Errorf("check point %d = %q, want %q", i, squat.CheckPoints[i], cp)
		}
	}
}

func TestTestByIDUnknown(t *testing.T) {
	if _, ok := TestByID("wrist_flexion"); ok {
		t.Error("unknown area resolved")
	}
	if _, ok := TestByID("shoulder_abduction"); ok {
		t.Error("unknown type resolved")
	}
	if _, ok := TestByID("balance"); ok {
		t.Error("ID without underscore resolved")
	}
	if _, ok := TestByID(""); ok {
		t.Error("empty ID resolved")
	}
}

func TestPainAreaMappingsYieldTests(t *testing.T) {
	known := make(map[string]bool, len(MobilityAreas))
	for _, area := range MobilityAreas {
		known[area] = true
	}

	for pain, areas := range PainAreaTests {
		if len(areas) == 0 {
			t.Errorf("pain area %q maps to no catalog areas", pain)
		}

		total := 0
		for _, area := range areas {
			if !known[area] {
				t.Errorf("pain area %q maps to unknown catalog area %q", pain, area)
			}
			total += len(TestsByArea(area))
		}
		if total == 0 {
			t.Errorf("pain area %q maps to no movement tests", pain)
		}
	}
}
