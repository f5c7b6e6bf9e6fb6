package entity

import "testing"

func TestExerciseTemplatesCoverAreas(t *testing.T) {
	// Routine generation falls back from failed-test areas to detected pain
	// areas, so both keyspaces need a template.
	for _, area := range MobilityAreas {
		if len(ExercisesForArea(area)) == 0 {
			t.Errorf("no exercise template for catalog area %q", area)
		}
	}
	for painArea := range PainAreaTests {
		if len(ExercisesForArea(painArea)) == 0 {
			t.Errorf("no exercise template for pain area %q", painArea)
		}
	}

	if len(ExercisesForArea("elbow")) != 0 {
		t.Error("unexpected exercises for unmapped area")
	}
}

func TestDefaultExercisesComplete(t *testing.T) {
	if len(DefaultExercises) == 0 {
		t.Fatal("default routine is empty")
	}
	for _, exercise := range DefaultExercises {
		if exercise.Name == "" || exercise.Duration == "" || exercise.Sets == "" {
			t.Errorf("default exercise incomplete: %+v", exercise)
		}
	}
}
