package nlp

import (
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type PainDetector struct {
	areaMappings map[string]PainAreaData
	stopWords    map[string]bool
}

func NewPainDetector() IPainDetector {

	stopWords := map[string]bool{
		"my": true, "me": true, "it": true, "its": true, "the": true,
		"an": true, "and": true, "or": true, "to": true, "of": true,
		"in": true, "on": true, "at": true, "for": true, "with": true,
		"from": true, "when": true, "while": true, "after": true,
		"is": true, "are": true, "was": true, "were": true, "been": true,
		"have": true, "has": true, "had": true, "do": true, "does": true,
		"feel": true, "feels": true, "feeling": true, "felt": true,
		"hurt": true, "hurts": true, "hurting": true, "pain": true,
		"painful": true, "sore": true, "ache": true, "aches": true,
		"aching": true, "really": true, "very": true, "so": true,
		"some": true, "bit": true, "lately": true,
		"please": true, "help": true, "today": true,
	}

	defaultMappings := getDefaultPainAreaMappings()

	return &PainDetector{
		areaMappings: defaultMappings,
		stopWords:    stopWords,
	}
}

// DetectPainAreas scores every known pain area against the message and
// returns the areas above the confidence threshold, best first.
func (d *PainDetector) DetectPainAreas(text string) ([]*DetectionResult, error) {
	startTime := time.Now()

	cleanText := d.cleanText(text)

	tokens := d.extractTokens(cleanText)

	matches := d.findBestMatches(tokens, cleanText)

	processingTime := time.Since(startTime)

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	for _, match := range matches {
		match.ProcessingTime = processingTime.String()
	}

	return matches, nil
}

func (d *PainDetector) findBestMatches(tokens []string, fullText string) []*DetectionResult {
	var results []*DetectionResult

	for area, mapping := range d.areaMappings {
		confidence := d.calculateAreaConfidence(tokens, fullText, mapping)

		if confidence.Confidence > 0.2 {
			result := &DetectionResult{
				Area:            area,
				AreaDisplayName: mapping.DisplayName,
				AreaDescription: mapping.Description,
				Region:          mapping.Region,
				Confidence:      confidence.Confidence,
				Matches:         confidence.Matches,
			}
			results = append(results, result)
		}
	}

	return results
}

func (d *PainDetector) calculateAreaConfidence(tokens []string, fullText string, mapping PainAreaData) *confidenceResult {
	var matches []MatchResult
	totalScore := 0.0
	maxPossibleScore := 0.0

	for _, keyword := range mapping.Keywords {
		for _, token := range tokens {
			if strings.EqualFold(token, keyword) {
				matches = append(matches, MatchResult{
					Keyword: keyword,
					Score:   1.0,
					Type:    "exact",
				})
				totalScore += 1.0
			}
		}
		maxPossibleScore += 1.0
	}

	for _, synonym := range mapping.Synonyms {
		similarity := d.calculateSimilarity(fullText, synonym)
		if similarity > 0.6 {
			matches = append(matches, MatchResult{
				Keyword: synonym,
				Score:   similarity,
				Type:    "synonym",
			})
			totalScore += similarity * 1.2
		}
	}

	for _, keyword := range mapping.Keywords {
		for _, token := range tokens {
			similarity := d.calculateSimilarity(token, keyword)
			if similarity > 0.5 && similarity < 1.0 {
				matches = append(matches, MatchResult{
					Keyword: keyword,
					Score:   similarity * 0.7,
					Type:    "fuzzy",
				})
				totalScore += similarity * 0.7
			}
		}
	}

	regionBonus := d.getRegionBonus(tokens, mapping.Region)
	totalScore += regionBonus

	confidence := totalScore / math.Max(maxPossibleScore, 1.0)
	if len(matches) > 1 {
		confidence *= 1.1
	}
	confidence = math.Min(confidence, 1.0)

	return &confidenceResult{
		Confidence: confidence,
		Matches:    matches,
	}
}

func (d *PainDetector) calculateSimilarity(text1, text2 string) float64 {

	norm1 := d.cleanText(text1)
	norm2 := d.cleanText(text2)

	if norm1 == norm2 {
		return 1.0
	}

	if strings.Contains(norm1, norm2) || strings.Contains(norm2, norm1) {
		shorter := norm1
		longer := norm2
		if len(norm1) > len(norm2) {
			shorter = norm2
			longer = norm1
		}
		return float64(len(shorter)) / float64(len(longer))
	}

	distance := d.levenshteinDistance(norm1, norm2)
	maxLen := math.Max(float64(len(norm1)), float64(len(norm2)))

	if maxLen == 0 {
		return 0.0
	}

	return math.Max(0, 1.0-(float64(distance)/maxLen))
}

func (d *PainDetector) levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	matrix := make([][]int, len(s1)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(s2)+1)
		matrix[i][0] = i
	}

	for j := 0; j <= len(s2); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(s1); i++ {
		for j := 1; j <= len(s2); j++ {
			cost := 0
			if s1[i-1] != s2[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(s1)][len(s2)]
}

func min(a, b, c int) int {
	if a < b && a < c {
		return a
	} else if b < c {
		return b
	}
	return c
}

func (d *PainDetector) getRegionBonus(tokens []string, region string) float64 {
	regionKeywords := map[string][]string{
		"head":       {"head", "face", "chewing", "clicking", "grinding", "clenching"},
		"upper_body": {"arm", "arms", "desk", "computer", "phone", "typing", "posture", "reaching", "overhead", "slouching"},
		"core":       {"sitting", "bending", "lifting", "twisting", "spine", "posture", "stiff"},
		"lower_body": {"walking", "running", "stairs", "squatting", "standing", "jumping", "kneeling"},
	}

	keywords, exists := regionKeywords[region]
	if !exists {
		return 0.0
	}

	bonus := 0.0
	for _, token := range tokens {
		for _, keyword := range keywords {
			if strings.Contains(strings.ToLower(token), strings.ToLower(keyword)) {
				bonus += 0.1
			}
		}
	}

	return math.Min(bonus, 0.3)
}

func (d *PainDetector) cleanText(text string) string {

	text = strings.ToLower(text)

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ := transform.String(t, text)

	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, result)

	words := strings.Fields(result)
	return strings.Join(words, " ")
}

func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

func (d *PainDetector) extractTokens(text string) []string {
	words := strings.Fields(text)
	var tokens []string

	for _, word := range words {
		word = strings.TrimSpace(word)
		if len(word) > 1 && !d.stopWords[word] {
			tokens = append(tokens, word)
		}
	}

	return tokens
}

func (d *PainDetector) GetAreaMapping(area string) (PainAreaData, bool) {
	mapping, exists := d.areaMappings[area]
	return mapping, exists
}

func (d *PainDetector) GetAllMappings() map[string]PainAreaData {
	return d.areaMappings
}

func (d *PainDetector) AddAreaMapping(area string, mapping PainAreaData) error {
	d.areaMappings[area] = mapping
	return nil
}

type confidenceResult struct {
	Confidence float64
	Matches    []MatchResult
}

func getDefaultPainAreaMappings() map[string]PainAreaData {
	return map[string]PainAreaData{
		"neck": {
			Area:        "neck",
			DisplayName: "Neck",
			Keywords:    []string{"neck", "cervical"},
			Synonyms:    []string{"neck pain", "stiff neck", "neck ache", "crick in the neck"},
			Region:      "upper_body",
			Description: "Neck and cervical spine discomfort",
		},
		"shoulder": {
			Area:        "shoulder",
			DisplayName: "Shoulder",
			Keywords:    []string{"shoulder", "arm"},
			Synonyms: []string{
				"shoulder pain", "frozen shoulder", "rotator cuff",
				"shoulder blade", "shoulder tightness",
			},
			Region:      "upper_body",
			Description: "Shoulder and upper arm discomfort",
		},
		"lower_back": {
			Area:        "lower_back",
			DisplayName: "Lower Back",
			Keywords:    []string{"back", "lumbar"},
			Synonyms: []string{
				"lower back", "lower back pain", "back ache",
				"lumbar pain", "slipped disc",
			},
			Region:      "core",
			Description: "Lower back and lumbar spine discomfort",
		},
		"knee": {
			Area:        "knee",
			DisplayName: "Knee",
			Keywords:    []string{"knee", "kneecap"},
			Synonyms: []string{
				"knee pain", "runners knee", "knee clicking",
				"behind the knee",
			},
			Region:      "lower_body",
			Description: "Knee joint discomfort",
		},
		"ankle": {
			Area:        "ankle",
			DisplayName: "Ankle",
			Keywords:    []string{"ankle", "foot"},
			Synonyms: []string{
				"ankle pain", "rolled ankle", "sprained ankle",
				"foot pain", "heel pain",
			},
			Region:      "lower_body",
			Description: "Ankle and foot discomfort",
		},
		"jaw": {
			Area:        "jaw",
			DisplayName: "Jaw",
			Keywords:    []string{"jaw", "tmj", "face"},
			Synonyms: []string{
				"jaw pain", "jaw clicking", "tmj pain",
				"face pain", "teeth grinding",
			},
			Region:      "head",
			Description: "Jaw and temporomandibular joint discomfort",
		},
	}
}
