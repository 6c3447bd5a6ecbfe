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

type NLPProcessor struct {
	intentMappings map[string]IntentMappingData
	stopWords      map[string]bool
}

func NewProcessor() INLPProcessor {

	stopWords := map[string]bool{
		"el": true, "la": true, "los": true, "las": true, "un": true,
		"una": true, "de": true, "del": true, "en": true, "con": true,
		"por": true, "para": true, "que": true, "mi": true, "me": true,
		"te": true, "se": true, "es": true, "a": true, "y": true,
		"o": true, "al": true, "lo": true, "su": true, "ya": true,
		"si": true, "no": true, "mas": true, "muy": true, "como": true,
	}

	defaultMappings := getDefaultIntentMappings()

	return &NLPProcessor{
		intentMappings: defaultMappings,
		stopWords:      stopWords,
	}
}

func (nlp *NLPProcessor) ClassifyIntent(text string) (*IntentResult, error) {
	startTime := time.Now()

	cleanText := nlp.cleanText(text)

	tokens := nlp.extractTokens(cleanText)

	matches := nlp.findBestMatches(tokens, cleanText)

	processingTime := time.Since(startTime)

	if len(matches) == 0 {
		return &IntentResult{
			Intent:         "unknown",
			Confidence:     0.0,
			ProcessingTime: processingTime.String(),
		}, nil
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	bestMatch := matches[0]
	bestMatch.ProcessingTime = processingTime.String()

	return bestMatch, nil
}

// CountKeywordHits returns the keywords found in text after diacritic and
// case normalization. Multi-word keywords are matched as substrings.
func (nlp *NLPProcessor) CountKeywordHits(text string, keywords []string) []string {
	cleanText := nlp.cleanText(text)

	var hits []string
	for _, keyword := range keywords {
		cleanKeyword := nlp.cleanText(keyword)
		if cleanKeyword == "" {
			continue
		}
		if strings.Contains(cleanText, cleanKeyword) {
			hits = append(hits, keyword)
		}
	}

	return hits
}

func (nlp *NLPProcessor) findBestMatches(tokens []string, fullText string) []*IntentResult {
	var results []*IntentResult

	for intentID, mapping := range nlp.intentMappings {
		confidence := nlp.calculateIntentConfidence(tokens, fullText, mapping)

		if confidence.Confidence > 0.2 {
			result := &IntentResult{
				Intent:     intentID,
				Confidence: confidence.Confidence,
				Matches:    confidence.Matches,
			}
			results = append(results, result)
		}
	}

	return results
}

func (nlp *NLPProcessor) calculateIntentConfidence(tokens []string, fullText string, mapping IntentMappingData) *confidenceResult {
	var matches []MatchResult
	totalScore := 0.0
	maxPossibleScore := 0.0

	for _, keyword := range mapping.Keywords {
		cleanKeyword := nlp.cleanText(keyword)
		for _, token := range tokens {
			if strings.EqualFold(token, cleanKeyword) {
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
		similarity := nlp.calculateSimilarity(fullText, synonym)
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
		cleanKeyword := nlp.cleanText(keyword)
		for _, token := range tokens {
			similarity := nlp.calculateSimilarity(token, cleanKeyword)
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

func (nlp *NLPProcessor) calculateSimilarity(text1, text2 string) float64 {
	norm1 := nlp.cleanText(text1)
	norm2 := nlp.cleanText(text2)

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

	distance := nlp.levenshteinDistance(norm1, norm2)
	maxLen := math.Max(float64(len(norm1)), float64(len(norm2)))

	if maxLen == 0 {
		return 0.0
	}

	return math.Max(0, 1.0-(float64(distance)/maxLen))
}

func (nlp *NLPProcessor) levenshteinDistance(s1, s2 string) int {
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

func (nlp *NLPProcessor) cleanText(text string) string {
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

func (nlp *NLPProcessor) extractTokens(text string) []string {
	words := strings.Fields(text)
	var tokens []string

	for _, word := range words {
		word = strings.TrimSpace(word)
		if len(word) > 1 && !nlp.stopWords[word] {
			tokens = append(tokens, word)
		}
	}

	return tokens
}

func (nlp *NLPProcessor) GetIntentMapping(intentID string) (IntentMappingData, bool) {
	mapping, exists := nlp.intentMappings[intentID]
	return mapping, exists
}

func (nlp *NLPProcessor) GetAllMappings() map[string]IntentMappingData {
	return nlp.intentMappings
}

func (nlp *NLPProcessor) AddIntentMapping(intentID string, mapping IntentMappingData) error {
	nlp.intentMappings[intentID] = mapping
	return nil
}

type confidenceResult struct {
	Confidence float64
	Matches    []MatchResult
}

func getDefaultIntentMappings() map[string]IntentMappingData {
	return map[string]IntentMappingData{
		"saludo": {
			IntentID:    "saludo",
			Keywords:    []string{"hola", "buenas", "buenos", "saludos", "hey", "ola"},
			Synonyms:    []string{"buenos dias", "buenas tardes", "buenas noches", "que tal"},
			Description: "Saludo inicial del cliente",
		},
		"multa": {
			IntentID:    "multa",
			Keywords:    []string{"multa", "infraccion", "transito", "foto", "boleta", "folio"},
			Synonyms:    []string{"multa de transito", "me multaron", "foto multa", "impugnar multa"},
			Description: "Consulta sobre multas de transito",
		},
		"precios": {
			IntentID:    "precios",
			Keywords:    []string{"precio", "costo", "cuanto", "cobran", "honorarios", "tarifa"},
			Synonyms:    []string{"cuanto cuesta", "cuanto cobran", "cual es el precio"},
			Description: "Consulta sobre precios y honorarios",
		},
		"consulta_legal": {
			IntentID:    "consulta_legal",
			Keywords:    []string{"abogado", "demanda", "juicio", "legal", "asesoria", "caso", "divorcio", "pension", "despido"},
			Synonyms:    []string{"necesito un abogado", "asesoria legal", "problema legal", "me demandaron"},
			Description: "Consulta legal general",
		},
		"audiencia": {
			IntentID:    "audiencia",
			Keywords:    []string{"audiencia", "cita", "juzgado", "comparecencia", "fecha"},
			Synonyms:    []string{"cuando es mi audiencia", "fecha de audiencia", "cita en el juzgado"},
			Description: "Consulta sobre audiencias programadas",
		},
		"agradecimiento": {
			IntentID:    "agradecimiento",
			Keywords:    []string{"gracias", "agradezco", "amable", "excelente"},
			Synonyms:    []string{"muchas gracias", "muy amable", "mil gracias"},
			Description: "Agradecimiento del cliente",
		},
		"despedida": {
			IntentID:    "despedida",
			Keywords:    []string{"adios", "luego", "pronto", "bye", "despido"},
			Synonyms:    []string{"hasta luego", "nos vemos", "hasta pronto"},
			Description: "Despedida del cliente",
		},
		"urgente": {
			IntentID:    "urgente",
			Keywords:    []string{"urgente", "urge", "detenido", "arrestado", "emergencia", "ayuda"},
			Synonyms:    []string{"es urgente", "lo detuvieron", "esta detenido", "necesito ayuda urgente"},
			Description: "Situacion urgente que requiere atencion inmediata",
		},
	}
}
