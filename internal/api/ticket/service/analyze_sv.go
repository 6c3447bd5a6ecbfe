package ticketService

import (
	"encoding/base64"
	"time"

	"DespachoJuridico/internal/entity"
	"DespachoJuridico/pkg/log"
	"golang.org/x/net/context"
)

const externalCallTimeout = 10 * time.Second

// Analyze runs the full OCR pipeline for one citation photo. An OCR failure
// is terminal for the image and short-circuits before the completion
// provider is touched; everything after OCR is fail-open.
func (s *ticketService) Analyze(ctx context.Context, image []byte, mimeType string) entity.AnalysisResult {
	ocrCtx, cancel := context.WithTimeout(ctx, externalCallTimeout)
	defer cancel()

	rawText, err := s.visionClient.DetectText(ocrCtx, image)
	if err != nil {
		s.log.WithFields(log.Fields{
			"error":     err.Error(),
			"mime_type": mimeType,
		}).Warn("OCR failed for citation photo")
		return entity.AnalysisResult{
			Success: false,
			Reason:  err.Error(),
		}
	}

	extractCtx, cancelExtract := context.WithTimeout(ctx, externalCallTimeout)
	defer cancelExtract()

	record := s.ExtractFields(extractCtx, rawText)
	score := Score(record)
	summary := FormatSummary(record, score)

	s.log.WithFields(log.Fields{
		"populated": score.Populated,
		"percent":   score.Percent,
	}).Info("Citation analysis complete")

	return entity.AnalysisResult{
		Success:      true,
		Record:       record.ToMap(),
		RawText:      rawText,
		Completeness: score,
		Summary:      summary,
	}
}

// AnalyzeDirect sends the photo straight to the vision model, skipping the
// dedicated OCR stage. Fallback path for deployments without a Vision API
// key; same schema and sentinel contract as Analyze.
func (s *ticketService) AnalyzeDirect(ctx context.Context, base64Image string, mimeType string) entity.AnalysisResult {
	if _, err := base64.StdEncoding.DecodeString(base64Image); err != nil {
		return entity.AnalysisResult{
			Success: false,
			Reason:  "invalid base64 image data",
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, externalCallTimeout)
	defer cancel()

	prompt := directAnalysisPrompt()

	response, err := s.geminiClient.AnalyzeImage(callCtx, base64Image, mimeType, prompt)
	if err != nil {
		s.log.WithError(err).Warn("Direct vision analysis failed")
		return entity.AnalysisResult{
			Success: false,
			Reason:  err.Error(),
		}
	}

	record, err := parseCompletionResponse(response)
	if err != nil {
		s.log.WithError(err).Warn("Could not parse vision model output, falling back to sentinel record")
		record = entity.AllSentinelRecord()
	}

	score := Score(record)
	summary := FormatSummary(record, score)

	return entity.AnalysisResult{
		Success:      true,
		Record:       record.ToMap(),
		Completeness: score,
		Summary:      summary,
	}
}

func directAnalysisPrompt() string {
	return `Analiza esta foto de una multa de tránsito mexicana.

Extrae TODOS estos datos y responde en formato JSON con esta estructura EXACTA:
{
  "infractor_name": "nombre completo del infraccionado",
  "ticket_folio": "número de folio o boleta",
  "infraction_date": "fecha de la infracción en formato DD/MM/YYYY",
  "knowledge_date": "fecha de conocimiento, si aparece",
  "plate_number": "placas del vehículo",
  "vehicle_make": "marca del vehículo",
  "vehicle_model": "línea/modelo del vehículo",
  "officer_name": "nombre del agente que emitió la multa",
  "officer_badge_id": "número de empleado del agente",
  "precinct": "delegación o corporación",
  "shift": "turno del oficial",
  "sector": "sector o zona",
  "time_of_day": "hora de la infracción (HH:MM)",
  "location": "ubicación completa de la infracción",
  "infraction_type": "descripción de la infracción",
  "legal_article": "artículo del reglamento infringido",
  "amount_due": "monto a pagar (solo número)"
}

Si un dato NO aparece, pon "Not specified". No inventes información.
Responde SOLO con el JSON, sin texto adicional.`
}
