package ticket

import "DespachoJuridico/internal/entity"

type AnalyzeRequest struct {
	ImageBase64 string `json:"image_base64" validate:"required"`
	MimeType    string `json:"mime_type"`
}

type AnalyzeResponse struct {
	Data  entity.AnalysisResult `json:"data"`
	Error string                `json:"error,omitempty"`
}

