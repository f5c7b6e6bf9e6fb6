package nlp

import (
	"reflect"
	"testing"
)

func TestExtractSeverity(t *testing.T) {
	cases := []struct {
		text     string
		severity float64
		kind     string
	}{
		{"the pain is about 7/10", 7, "numeric"},
		{"I'd say 8 out of 10", 8, "numeric"},
		{"honestly 15/10 right now", 10, "numeric"},
		{"pain is 6 when I wake up", 6, "scale"},
		{"severity at 3 most days", 3, "scale"},
		{"it is severe in the morning", 8, "words"},
		{"just a mild twinge", 3, "words"},
		{"severe ache but only 3/10 today", 3, "numeric"},
		{"my knee bothers me", 0, "none"},
	}

	extractor := NewPainExtractor()
	for _, tc := range cases {
		severity, kind := extractor.ExtractSeverity(tc.text)
		if severity != tc.severity || kind != tc.kind {
			t.Errorf("%q: got (%.0f, %s), want (%.0f, %s)",
				tc.text, severity, kind, tc.severity, tc.kind)
		}
	}
}

func TestExtractQuality(t *testing.T) {
	cases := []struct {
		text    string
		quality string
	}{
		{"a sharp stabbing pain", "stabbing"},
		{"more of a dull ache", "dull"},
		{"it feels TIGHT after sitting", "tight"},
		{"general stiffness in the morning", "stiff"},
		{"hard to describe", "unknown"},
	}

	extractor := NewPainExtractor()
	for _, tc := range cases {
		if got := extractor.ExtractQuality(tc.text); got != tc.quality {
			t.Errorf("%q: got %q, want %q", tc.text, got, tc.quality)
		}
	}
}

func TestExtractDuration(t *testing.T) {
	cases := []struct {
		text     string
		duration string
	}{
		{"started 3 days ago", "3 days"},
		{"for 1 week now", "1 week"},
		{"about 2 months", "2 months"},
		{"since yesterday", "1 day"},
		{"a couple of weeks", "few weeks"},
		{"had it for a year", "1 year"},
		{"comes and goes", ""},
	}

	extractor := NewPainExtractor()
	for _, tc := range cases {
		if got := extractor.ExtractDuration(tc.text); got != tc.duration {
			t.Errorf("%q: got %q, want %q", tc.text, got, tc.duration)
		}
	}
}

func TestExtractTriggers(t *testing.T) {
	cases := []struct {
		text     string
		triggers []string
	}{
		{"worse when sitting and typing all day", []string{"sitting", "typing"}},
		{"hurts walking upstairs", []string{"walking", "stairs"}},
		{"fine at rest", nil},
	}

	extractor := NewPainExtractor()
	for _, tc := range cases {
		got := extractor.ExtractTriggers(tc.text)
		if !reflect.DeepEqual(got, tc.triggers) {
			t.Errorf("%q: got %v, want %v", tc.text, got, tc.triggers)
		}
	}
}

func TestExtractPainDetails(t *testing.T) {
	extractor := NewPainExtractor()

	details, err := extractor.ExtractPainDetails("sharp pain 8/10 for 2 weeks when running")
	if err != nil {
		t.Fatalf("ExtractPainDetails: %v", err)
	}
	if details == nil {
		t.Fatal("details = nil, want extraction")
	}
	if details.Severity != 8 {
		t.Errorf("severity = %.0f, want 8", details.Severity)
	}
	if details.Quality != "sharp" {
		t.Errorf("quality = %q, want sharp", details.Quality)
	}
	if details.Duration != "2 weeks" {
		t.Errorf("duration = %q, want 2 weeks", details.Duration)
	}
	if !reflect.DeepEqual(details.Triggers, []string{"running"}) {
		t.Errorf("triggers = %v, want [running]", details.Triggers)
	}

	// Numeric severity plus a trigger caps confidence at 1.0.
	if details.Confidence != 1.0 {
		t.Errorf("confidence = %.2f, want 1.0", details.Confidence)
	}
}

func TestExtractPainDetailsNothingFound(t *testing.T) {
	details, err := NewPainExtractor().ExtractPainDetails("I want to move better")
	if err != nil {
		t.Fatalf("ExtractPainDetails: %v", err)
	}
	if details != nil {
		t.Fatalf("details = %+v, want nil when nothing is extractable", details)
	}
}

func TestExtractPainDetailsQualityOnly(t *testing.T) {
	details, err := NewPainExtractor().ExtractPainDetails("kind of a burning sensation")
	if err != nil {
		t.Fatalf("ExtractPainDetails: %v", err)
	}
	if details == nil {
		t.Fatal("details = nil, want extraction from quality alone")
	}
	if details.Severity != 0 || details.Quality != "burning" {
		t.Errorf("got severity %.0f quality %q, want 0 and burning", details.Severity, details.Quality)
	}
	if details.Confidence != 0.7 {
		t.Errorf("confidence = %.2f, want the 0.7 baseline", details.Confidence)
	}
}
