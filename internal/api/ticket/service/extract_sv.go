package ticketService

import (
	"encoding/json"
	"fmt"
	"strings"

	"DespachoJuridico/internal/entity"
	"DespachoJuridico/pkg/groq"
	"golang.org/x/net/context"
)

// maxRawTextRunes bounds the OCR text handed to the completion model so a
// dense photo cannot blow the model's input budget. Head truncation; a real
// citation front-loads its fields.
const maxRawTextRunes = 12000

const extractionPromptTemplate = `Eres un experto en análisis de multas de tránsito en México.

Aquí está el texto extraído de una foto de multa:

%s

Extrae TODOS estos datos con MÁXIMA precisión y responde en formato JSON con esta estructura EXACTA:
{
  "infractor_name": "nombre completo del infraccionado/propietario del vehículo",
  "ticket_folio": "número de folio, boleta o número de infracción",
  "infraction_date": "fecha de la infracción en formato DD/MM/YYYY",
  "knowledge_date": "fecha en que el infraccionado tuvo conocimiento, si aparece",
  "plate_number": "placas del vehículo",
  "vehicle_make": "marca del vehículo (ej: NISSAN, HONDA, TOYOTA)",
  "vehicle_model": "línea/modelo del vehículo (ej: SENTRA, CIVIC, COROLLA)",
  "officer_name": "nombre completo del policía vial o agente que emitió la multa",
  "officer_badge_id": "número de identificación, placa o empleado del policía",
  "precinct": "delegación, dirección o corporación (ej: DIRECCIÓN DE POLICÍA VIAL)",
  "shift": "turno del oficial (ej: PRIMER TURNO, SEGUNDO TURNO, MATUTINO, VESPERTINO)",
  "sector": "sector, zona o región donde ocurrió (ej: SECTOR 1, ZONA NORTE)",
  "time_of_day": "hora exacta de la infracción (formato 24hrs: HH:MM)",
  "location": "ubicación completa: calle, número, colonia, municipio",
  "infraction_type": "descripción exacta de la infracción cometida",
  "legal_article": "artículo, fracción e inciso del reglamento infringido",
  "amount_due": "cantidad exacta a pagar (solo número, ej: 2500)"
}

INSTRUCCIONES CRÍTICAS:
- Extrae el texto EXACTO que aparece en la multa
- No inventes información que no esté en el texto
- Si un dato NO aparece, pon "Not specified"
- Para fechas, convierte al formato DD/MM/YYYY
- Para el monto, pon solo el número sin símbolos

Responde SOLO con el JSON, sin texto adicional.`

// Low temperature and a bounded output budget favor verbatim extraction
// over creativity.
func extractionParams() groq.CompletionParams {
	return groq.CompletionParams{
		Temperature: 0.1,
		MaxTokens:   1000,
	}
}

// ExtractFields coerces raw OCR text into the fixed schema. It never fails:
// any provider or parse error degrades to the all-sentinel record so the
// pipeline can continue with a 0% completeness score.
func (s *ticketService) ExtractFields(ctx context.Context, rawText string) entity.TicketRecord {
	prompt := fmt.Sprintf(extractionPromptTemplate, s.utils.TruncateRunes(rawText, maxRawTextRunes))

	response, err := s.groqClient.CreateChatCompletion(ctx, "", prompt, extractionParams())
	if err != nil {
		s.log.WithError(err).Warn("Completion provider failed, falling back to sentinel record")
		return entity.AllSentinelRecord()
	}

	record, err := parseCompletionResponse(response)
	if err != nil {
		s.log.WithError(err).Warn("Could not parse completion output, falling back to sentinel record")
		return entity.AllSentinelRecord()
	}

	return record
}

// parseCompletionResponse locates the outermost {...} span in the model
// output and parses only that span. The full schema must be present.
func parseCompletionResponse(response string) (entity.TicketRecord, error) {
	jsonStart := strings.Index(response, "{")
	jsonEnd := strings.LastIndex(response, "}")

	if jsonStart == -1 || jsonEnd == -1 || jsonEnd <= jsonStart {
		return entity.TicketRecord{}, fmt.Errorf("cannot find valid JSON in response")
	}

	jsonStr := response[jsonStart : jsonEnd+1]

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return entity.TicketRecord{}, err
	}

	values := make(map[string]string, len(raw))
	for key, v := range raw {
		switch typed := v.(type) {
		case string:
			values[key] = typed
		case float64:
			values[key] = strings.TrimSuffix(fmt.Sprintf("%.2f", typed), ".00")
		case nil:
			values[key] = entity.Sentinel
		default:
			values[key] = fmt.Sprintf("%v", typed)
		}
	}

	for _, key := range entity.TicketSchemaKeys {
		if _, ok := values[key]; !ok {
			return entity.TicketRecord{}, fmt.Errorf("schema key %q missing from response", key)
		}
	}

	return entity.RecordFromMap(values), nil
}
