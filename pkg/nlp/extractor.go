package nlp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type PainDetails struct {
	Severity   float64  // 0-10 scale, 0 when not stated
	Quality    string   // "sharp", "dull", "aching", ...
	Duration   string   // "2 weeks", "few days", ...
	Triggers   []string // activities that provoke the pain
	Confidence float64
}

type PainExtractor struct {
	severityWords map[string]float64
}

func NewPainExtractor() *PainExtractor {
	return &PainExtractor{
		severityWords: map[string]float64{
			"unbearable":   10,
			"excruciating": 9,
			"agonizing":    9,
			"severe":       8,
			"intense":      8,
			"terrible":     8,
			"awful":        7,
			"bad":          6,
			"strong":       6,
			"moderate":     5,
			"noticeable":   4,
			"mild":         3,
			"slight":       2,
			"minor":        2,
			"faint":        1,
		},
	}
}

func (pe *PainExtractor) ExtractSeverity(text string) (float64, string) {
	text = strings.ToLower(text)

	// Pattern 1: explicit scale (7/10, 7 out of 10)
	scalePattern := regexp.MustCompile(`(\d{1,2})\s*(?:/|out\s+of)\s*(?:10|ten)`)
	if matches := scalePattern.FindStringSubmatch(text); len(matches) > 0 {
		if severity, err := strconv.ParseFloat(matches[1], 64); err == nil {
			if severity > 10 {
				severity = 10
			}
			return severity, "numeric"
		}
	}

	// Pattern 2: number next to a pain word (pain is 8, severity 6)
	labelPattern := regexp.MustCompile(`(?:pain|severity|level|rated?|hurts?)\s*(?:is|of|at|about|around)?\s*(?:a|an)?\s*(\d{1,2})\b`)
	if matches := labelPattern.FindStringSubmatch(text); len(matches) > 0 {
		if severity, err := strconv.ParseFloat(matches[1], 64); err == nil {
			if severity > 10 {
				severity = 10
			}
			return severity, "scale"
		}
	}

	// Pattern 3: descriptive words
	severity := pe.parseSeverityWords(text)
	if severity > 0 {
		return severity, "words"
	}

	return 0, "none"
}

func (pe *PainExtractor) parseSeverityWords(text string) float64 {
	words := strings.Fields(text)
	highest := 0.0

	for _, word := range words {
		word = strings.Trim(strings.ToLower(word), ".,!?")

		if val, exists := pe.severityWords[word]; exists {
			if val > highest {
				highest = val
			}
		}
	}

	return highest
}

func (pe *PainExtractor) ExtractQuality(text string) string {
	text = strings.ToLower(text)

	qualityKeywords := []string{
		"stabbing", "shooting", "burning", "throbbing", "radiating",
		"tingling", "cramping", "sharp", "dull", "aching", "stiff",
		"tight", "tender", "numb",
	}

	for _, keyword := range qualityKeywords {
		if strings.Contains(text, keyword) {
			return keyword
		}
	}

	return "unknown"
}

func (pe *PainExtractor) ExtractDuration(text string) string {
	text = strings.ToLower(text)

	// Pattern 1: numeric (3 days, 2 weeks, 1 month)
	durationPattern := regexp.MustCompile(`(\d+)\s*(day|week|month|year)s?`)
	if matches := durationPattern.FindStringSubmatch(text); len(matches) > 0 {
		num, _ := strconv.Atoi(matches[1])
		unit := matches[2]

		if num == 1 {
			return fmt.Sprintf("1 %s", unit)
		}
		return fmt.Sprintf("%d %ss", num, unit)
	}

	// Pattern 2: common phrases
	durationPhrases := []struct {
		phrase   string
		duration string
	}{
		{"since yesterday", "1 day"},
		{"couple of days", "few days"},
		{"few days", "few days"},
		{"couple of weeks", "few weeks"},
		{"few weeks", "few weeks"},
		{"a week", "1 week"},
		{"a month", "1 month"},
		{"a year", "1 year"},
	}

	for _, entry := range durationPhrases {
		if strings.Contains(text, entry.phrase) {
			return entry.duration
		}
	}

	return ""
}

func (pe *PainExtractor) ExtractTriggers(text string) []string {
	text = strings.ToLower(text)

	triggerKeywords := []string{
		"sitting", "standing", "walking", "running", "lifting",
		"typing", "sleeping", "driving", "bending", "reaching",
		"stairs", "squatting", "exercise", "chewing",
	}

	var triggers []string
	for _, keyword := range triggerKeywords {
		if strings.Contains(text, keyword) {
			triggers = append(triggers, keyword)
		}
	}

	return triggers
}

func (pe *PainExtractor) ExtractPainDetails(text string) (*PainDetails, error) {
	severity, severityType := pe.ExtractSeverity(text)

	quality := pe.ExtractQuality(text)

	duration := pe.ExtractDuration(text)

	triggers := pe.ExtractTriggers(text)

	if severity == 0 && quality == "unknown" && duration == "" && len(triggers) == 0 {
		return nil, nil
	}

	confidence := 0.7
	if severityType == "numeric" {
		confidence = 0.9
	} else if severityType == "scale" {
		confidence = 0.8
	}

	if len(triggers) > 0 {
		confidence += 0.1
	}

	if confidence > 1.0 {
		confidence = 1.0
	}

	return &PainDetails{
		Severity:   severity,
		Quality:    quality,
		Duration:   duration,
		Triggers:   triggers,
		Confidence: confidence,
	}, nil
}
