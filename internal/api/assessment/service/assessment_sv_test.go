package assessmentService

import (
	"PhysioGolang/internal/entity"
	"PhysioGolang/pkg/movenet"
	"PhysioGolang/pkg/nlp"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestDeriveState(t *testing.T) {
	cases := []struct {
		name    string
		session *entity.AssessmentSession
		want    string
	}{
		{"fresh session", &entity.AssessmentSession{}, entity.StateAwaitingProblemAreas},
		{"areas detected", &entity.AssessmentSession{
			ProblemAreas: []string{"neck"},
		}, entity.StateTesting},
		{"tests in progress", &entity.AssessmentSession{
			ProblemAreas:     []string{"neck"},
			RecommendedTests: []string{"spine_flexion", "shoulder_flexion"},
			CompletedTests:   []string{"spine_flexion"},
		}, entity.StateTesting},
		{"all tests done", &entity.AssessmentSession{
			ProblemAreas:     []string{"neck"},
			RecommendedTests: []string{"spine_flexion"},
			CompletedTests:   []string{"spine_flexion"},
		}, entity.StateRoutineReady},
		{"routine stored", &entity.AssessmentSession{
			Routine: &entity.Routine{},
		}, entity.StateRoutineReady},
	}

	for _, tc := range cases {
		if got := deriveState(tc.session); got != tc.want {
			t.Errorf("%s: state = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestAllTestsCompletedNeedsRecommendations(t *testing.T) {
	// A session with nothing recommended is never "done": completion only
	// means something once tests are on the plan.
	session := &entity.AssessmentSession{CompletedTests: []string{"spine_flexion"}}
	if allTestsCompleted(session) {
		t.Error("completed = true with no recommended tests")
	}
}

func TestRecommendedTestsForAreas(t *testing.T) {
	wantIDs := []string{
		"spine_flexion", "spine_rotation",
		"shoulder_flexion", "shoulder_external_rotation", "shoulder_internal_rotation",
	}

	recommended := recommendedTestsForAreas([]string{"neck"})

	gotIDs := make([]string, 0, len(recommended))
	for _, test := range recommended {
		gotIDs = append(gotIDs, test.ID)
		if test.Name == "" || test.Description == "" {
			t.Errorf("%s: missing catalog fields", test.ID)
		}
	}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Errorf("neck tests = %v, want %v", gotIDs, wantIDs)
	}

	// Overlapping areas must not recommend the same test twice.
	combined := recommendedTestsForAreas([]string{"neck", "shoulder"})
	if len(combined) != len(wantIDs) {
		t.Errorf("neck+shoulder recommends %d tests, want %d", len(combined), len(wantIDs))
	}

	if unmapped := recommendedTestsForAreas([]string{"elbow"}); len(unmapped) != 0 {
		t.Errorf("unmapped area recommends %d tests, want none", len(unmapped))
	}
}

func TestNextRecommendedTest(t *testing.T) {
	session := &entity.AssessmentSession{
		RecommendedTests: []string{"spine_flexion", "shoulder_flexion"},
	}

	next := nextRecommendedTest(session)
	if next == nil || next.ID != "spine_flexion" {
		t.Fatalf("next = %+v, want spine_flexion", next)
	}
	if next.Name != "Spine Flexion Test" {
		t.Errorf("next name = %q, want the catalog name", next.Name)
	}

	session.CompletedTests = []string{"spine_flexion"}
	next = nextRecommendedTest(session)
	if next == nil || next.ID != "shoulder_flexion" {
		t.Fatalf("next = %+v, want shoulder_flexion after completing the first", next)
	}

	session.CompletedTests = []string{"spine_flexion", "shoulder_flexion"}
	if next = nextRecommendedTest(session); next != nil {
		t.Errorf("next = %+v, want nil once everything is done", next)
	}
}

func TestFailedTestAreas(t *testing.T) {
	session := &entity.AssessmentSession{
		CompletedTests: []string{
			"shoulder_flexion",
			"spine_flexion",
			"shoulder_internal_rotation",
			"hip_flexion",
			"ankle_dorsiflexion",
		},
		TestResults: map[string]movenet.Result{
			"shoulder_flexion":           {Pass: false},
			"spine_flexion":              {Pass: true},
			"shoulder_internal_rotation": {Pass: false},
			"hip_flexion":                {Pass: false},
			// ankle_dorsiflexion has no recorded result and is skipped.
		},
	}

	got := failedTestAreas(session)
	want := []string{"shoulder", "hip"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("failed areas = %v, want %v", got, want)
	}
}

func TestExercisesForAreas(t *testing.T) {
	exercises := exercisesForAreas([]string{"shoulder", "hip"})
	if len(exercises) == 0 {
		t.Fatal("no exercises for shoulder and hip")
	}
	for _, exercise := range exercises {
		if exercise.Name == "" || exercise.Duration == "" {
			t.Errorf("exercise %+v missing fields", exercise)
		}
	}

	if got := exercisesForAreas([]string{"nowhere"}); len(got) != 0 {
		t.Errorf("unknown area yields %d exercises, want none", len(got))
	}
}

func TestPainDetailsPromptLine(t *testing.T) {
	if got := painDetailsPromptLine(nil); got != "" {
		t.Errorf("line for nil details = %q, want empty", got)
	}

	details := &nlp.PainDetails{
		Severity: 7,
		Quality:  "sharp",
		Duration: "2 weeks",
		Triggers: []string{"sitting", "typing"},
	}
	want := "Known pain details: severity 7/10; quality sharp; duration 2 weeks; triggered by sitting, typing."
	if got := painDetailsPromptLine(details); got != want {
		t.Errorf("line = %q, want %q", got, want)
	}

	// "unknown" quality carries no information and is dropped.
	if got := painDetailsPromptLine(&nlp.PainDetails{Quality: "unknown"}); got != "" {
		t.Errorf("line for unknown quality = %q, want empty", got)
	}
}

func TestFormatRoutineText(t *testing.T) {
	session := &entity.AssessmentSession{
		UserName: "Maya",
		Routine: &entity.Routine{
			Explanation: "A gentle start for your shoulder.",
			Exercises: []entity.Exercise{
				{
					Name:        "Cross-Body Shoulder Stretch",
					Duration:    "2 minutes",
					Description: "Gentle stretch to improve mobility",
					Sets:        "4 holds per arm",
				},
			},
		},
	}

	got := formatRoutineText(session)
	want := "Hi Maya!\n\n" +
		"A gentle start for your shoulder.\n\n" +
		"Your exercises:\n" +
		"\n1. Cross-Body Shoulder Stretch (2 minutes)\n" +
		"   Gentle stretch to improve mobility\n" +
		"   4 holds per arm\n" +
		"\nWith care,\nTara"
	if got != want {
		t.Errorf("routine text = %q, want %q", got, want)
	}

	session.UserName = ""
	if got := formatRoutineText(session); strings.HasPrefix(got, "Hi ") {
		t.Errorf("routine text greets by name without one: %q", got)
	}
}

func TestFallbackEmpathyResponse(t *testing.T) {
	for _, area := range []string{"neck", "shoulder", "lower_back", "knee", "ankle", "jaw"} {
		if _, ok := painAreaResponses[area]; !ok {
			t.Errorf("no canned empathy response for %q", area)
			continue
		}
		if got := fallbackEmpathyResponse(area); got != painAreaResponses[area] {
			t.Errorf("%s: response does not use the canned text", area)
		}
	}

	generic := "I'm so sorry you're in pain!\n\n" +
		"• When did it start?\n" +
		"• Any past injuries there?\n" +
		"• What movements make it worse?"
	if got := fallbackEmpathyResponse("elbow"); got != generic {
		t.Errorf("unknown area response = %q, want the generic reply", got)
	}
}

func TestSessionKeyAndTTL(t *testing.T) {
	if got := sessionKey("abc"); got != "assessment:session:abc" {
		t.Errorf("session key = %q", got)
	}

	t.Setenv("SESSION_TTL_HOURS", "")
	if got := sessionTTL(); got != 24*time.Hour {
		t.Errorf("default TTL = %v, want 24h", got)
	}

	t.Setenv("SESSION_TTL_HOURS", "6")
	if got := sessionTTL(); got != 6*time.Hour {
		t.Errorf("TTL = %v, want 6h", got)
	}

	t.Setenv("SESSION_TTL_HOURS", "-3")
	if got := sessionTTL(); got != 24*time.Hour {
		t.Errorf("negative TTL = %v, want the 24h default", got)
	}
}
