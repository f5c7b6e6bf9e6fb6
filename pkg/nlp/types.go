package nlp

type DetectionResult struct {
	Area            string        `json:"area"`
	AreaDisplayName string        `json:"area_display_name"`
	AreaDescription string        `json:"area_description"`
	Region          string        `json:"region"`
	Confidence      float64       `json:"confidence"`
	Matches         []MatchResult `json:"matches"`
	ProcessingTime  string        `json:"processing_time"`
}

type MatchResult struct {
	Keyword string  `json:"keyword"`
	Score   float64 `json:"score"`
	Type    string  `json:"type"`
}

type IPainDetector interface {
	DetectPainAreas(text string) ([]*DetectionResult, error)
	GetAreaMapping(area string) (PainAreaData, bool)
	GetAllMappings() map[string]PainAreaData
	AddAreaMapping(area string, mapping PainAreaData) error
}

type PainAreaData struct {
	Area        string   `json:"area"`
	DisplayName string   `json:"display_name"`
	Keywords    []string `json:"keywords"`
	Synonyms    []string `json:"synonyms"`
	Region      string   `json:"region"`
	Description string   `json:"description"`
}
