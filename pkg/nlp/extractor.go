package nlp

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

type ContactData struct {
	Name       string
	Phone      string
	Confidence float64
}

type ContactExtractor struct {
	namePrefixes []string
}

func NewContactExtractor() *ContactExtractor {
	return &ContactExtractor{
		namePrefixes: []string{
			"me llamo", "mi nombre es", "soy", "habla",
		},
	}
}

// ExtractPhone pulls a Mexican phone number out of free text. Accepts the
// bare 10-digit form and the +52 prefixed form with optional separators.
func (ce *ContactExtractor) ExtractPhone(text string) string {
	phonePattern := regexp.MustCompile(`(?:\+?52\s?)?(\d{2}[\s.-]?\d{4}[\s.-]?\d{4}|\d{10})`)
	match := phonePattern.FindStringSubmatch(text)
	if len(match) < 2 {
		return ""
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, match[1])

	if len(digits) != 10 {
		return ""
	}

	return digits
}

// ExtractAmount finds a peso amount in the text ($2,500, 2500 pesos, $1,234.56).
func (ce *ContactExtractor) ExtractAmount(text string) (float64, bool) {
	amountPattern := regexp.MustCompile(`\$\s?(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?)|(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?)\s?(?:pesos|mxn)`)
	match := amountPattern.FindStringSubmatch(strings.ToLower(text))
	if len(match) == 0 {
		return 0, false
	}

	raw := match[1]
	if raw == "" {
		raw = match[2]
	}

	cleaned := strings.ReplaceAll(raw, ",", "")
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}

	return amount, true
}

func (ce *ContactExtractor) ExtractName(text string) string {
	lower := strings.ToLower(text)

	for _, prefix := range ce.namePrefixes {
		idx := strings.Index(lower, prefix)
		if idx == -1 {
			continue
		}

		rest := strings.TrimSpace(text[idx+len(prefix):])
		words := strings.Fields(rest)

		var nameParts []string
		for _, word := range words {
			trimmed := strings.Trim(word, ".,;:!?")
			if trimmed == "" {
				break
			}
			// A lowercase word after the name has started ends it ("Juan
			// Perez y tengo una multa" should not swallow the sentence).
			first := []rune(trimmed)[0]
			if !unicode.IsUpper(first) && len(nameParts) > 0 {
				break
			}
			nameParts = append(nameParts, trimmed)
			if len(nameParts) == 4 {
				break
			}
		}

		if len(nameParts) > 0 {
			return strings.Join(nameParts, " ")
		}
	}

	return ""
}

func (ce *ContactExtractor) ExtractContact(text string) *ContactData {
	phone := ce.ExtractPhone(text)
	name := ce.ExtractName(text)

	if phone == "" && name == "" {
		return nil
	}

	confidence := 0.5
	if phone != "" {
		confidence += 0.3
	}
	if name != "" {
		confidence += 0.2
	}

	return &ContactData{
		Name:       name,
		Phone:      phone,
		Confidence: confidence,
	}
}
