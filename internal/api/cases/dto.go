package cases

import "DespachoJuridico/internal/entity"

type CreateConsultationRequest struct {
	ClientPhone string `json:"client_phone" validate:"required,min=10"`
	ClientName  string `json:"client_name" validate:"required"`
	Issue       string `json:"issue" validate:"required"`
	Urgency     string `json:"urgency" validate:"omitempty,oneof=normal urgent"`
}

type ConsultationResponse struct {
	Data entity.Consultation `json:"data"`
}

type StatsResponse struct {
	Data entity.LedgerStats `json:"data"`
}

type PendingResponse struct {
	Consultations []entity.Consultation `json:"consultations"`
	UrgentItems   int                   `json:"urgent_items"`
}

type HearingsResponse struct {
	Hearings []entity.UpcomingHearing `json:"hearings"`
}
