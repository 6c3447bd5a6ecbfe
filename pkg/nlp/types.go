package nlp

type IntentResult struct {
	Intent         string        `json:"intent"`
	Confidence     float64       `json:"confidence"`
	Matches        []MatchResult `json:"matches"`
	ProcessingTime string        `json:"processing_time"`
}

type MatchResult struct {
	Keyword string  `json:"keyword"`
	Score   float64 `json:"score"`
	Type    string  `json:"type"`
}

type INLPProcessor interface {
	ClassifyIntent(text string) (*IntentResult, error)
	CountKeywordHits(text string, keywords []string) []string
	GetIntentMapping(intentID string) (IntentMappingData, bool)
	GetAllMappings() map[string]IntentMappingData
	AddIntentMapping(intentID string, mapping IntentMappingData) error
}

type IntentMappingData struct {
	IntentID    string   `json:"intent_id"`
	Keywords    []string `json:"keywords"`
	Synonyms    []string `json:"synonyms"`
	Description string   `json:"description"`
}
