package nlp

import "testing"

func detect(t *testing.T, message string) []*DetectionResult {
	t.Helper()

	results, err := NewPainDetector().DetectPainAreas(message)
	if err != nil {
		t.Fatalf("DetectPainAreas(%q): %v", message, err)
	}
	return results
}

func matchTypes(result *DetectionResult) map[string]bool {
	types := make(map[string]bool, len(result.Matches))
	for _, match := range result.Matches {
		types[match.Type] = true
	}
	return types
}

func TestDetectPainAreasExactKeyword(t *testing.T) {
	results := detect(t, "my neck hurts")

	if len(results) != 1 {
		t.Fatalf("got %d areas, want 1", len(results))
	}

	got := results[0]
	if got.Area != "neck" {
		t.Errorf("area = %q, want neck", got.Area)
	}
	if got.AreaDisplayName != "Neck" {
		t.Errorf("display name = %q, want Neck", got.AreaDisplayName)
	}
	if got.Region != "upper_body" {
		t.Errorf("region = %q, want upper_body", got.Region)
	}
	if got.Confidence <= 0.2 {
		t.Errorf("confidence = %.2f, want above detection threshold", got.Confidence)
	}
	if !matchTypes(got)["exact"] {
		t.Errorf("matches = %+v, want an exact keyword match", got.Matches)
	}
	if got.ProcessingTime == "" {
		t.Error("processing time not recorded")
	}
}

func TestDetectPainAreasSynonymPhrase(t *testing.T) {
	results := detect(t, "my frozen shoulder")

	if len(results) != 1 {
		t.Fatalf("got %d areas, want 1", len(results))
	}

	got := results[0]
	if got.Area != "shoulder" {
		t.Errorf("area = %q, want shoulder", got.Area)
	}
	if !matchTypes(got)["synonym"] {
		t.Errorf("matches = %+v, want a synonym phrase match", got.Matches)
	}
	if got.Confidence < 0.9 {
		t.Errorf("confidence = %.2f, want at least 0.9 for keyword plus synonym", got.Confidence)
	}
}

func TestDetectPainAreasFuzzyMisspelling(t *testing.T) {
	results := detect(t, "my sholder is stiff")

	if len(results) != 1 {
		t.Fatalf("got %d areas, want 1", len(results))
	}

	got := results[0]
	if got.Area != "shoulder" {
		t.Errorf("area = %q, want shoulder", got.Area)
	}
	if !matchTypes(got)["fuzzy"] {
		t.Errorf("matches = %+v, want a fuzzy match for the misspelling", got.Matches)
	}
}

func TestDetectPainAreasNoMatch(t *testing.T) {
	// The second message is nothing but stop words once pain vocabulary
	// is stripped, so no tokens survive.
	for _, message := range []string{"hello there", "it really hurts"} {
		if results := detect(t, message); len(results) != 0 {
			t.Errorf("%q: detected %d areas, want none", message, len(results))
		}
	}
}

func TestDetectPainAreasRankedByConfidence(t *testing.T) {
	results := detect(t, "my neck and lower back hurt when sitting")

	if len(results) != 2 {
		t.Fatalf("got %d areas, want 2", len(results))
	}

	// "sitting" earns lower_back a core region bonus, so it outranks neck.
	if results[0].Area != "lower_back" || results[1].Area != "neck" {
		t.Errorf("ranking = [%s %s], want [lower_back neck]", results[0].Area, results[1].Area)
	}
	if results[0].Confidence <= results[1].Confidence {
		t.Errorf("confidences not descending: %.2f then %.2f",
			results[0].Confidence, results[1].Confidence)
	}
}

func TestDetectPainAreasAccentsAndPunctuation(t *testing.T) {
	results := detect(t, "My NECK, it hurts...")

	if len(results) != 1 || results[0].Area != "neck" {
		t.Fatalf("results = %+v, want neck detected despite casing and punctuation", results)
	}
}

func TestAddAreaMappingExtendsDetection(t *testing.T) {
	detector := NewPainDetector()

	if _, exists := detector.GetAreaMapping("elbow"); exists {
		t.Fatal("elbow mapping should not exist by default")
	}

	err := detector.AddAreaMapping("elbow", PainAreaData{
		Area:        "elbow",
		DisplayName: "Elbow",
		Keywords:    []string{"elbow"},
		Region:      "upper_body",
		Description: "Elbow discomfort",
	})
	if err != nil {
		t.Fatalf("AddAreaMapping: %v", err)
	}

	results, err := detector.DetectPainAreas("elbow discomfort")
	if err != nil {
		t.Fatalf("DetectPainAreas: %v", err)
	}
	if len(results) != 1 || results[0].Area != "elbow" {
		t.Fatalf("results = %+v, want the custom elbow area", results)
	}
}

func TestGetAllMappingsCoversDefaults(t *testing.T) {
	mappings := NewPainDetector().GetAllMappings()

	for _, area := range []string{"neck", "shoulder", "lower_back", "knee", "ankle", "jaw"} {
		mapping, exists := mappings[area]
		if !exists {
			t.Errorf("default mapping %q missing", area)
			continue
		}
		if mapping.Area != area {
			t.Errorf("mapping %q carries area %q", area, mapping.Area)
		}
		if len(mapping.Keywords) == 0 {
			t.Errorf("mapping %q has no keywords", area)
		}
	}
}
