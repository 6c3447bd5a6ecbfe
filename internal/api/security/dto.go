package security

import "DespachoJuridico/internal/entity"

type ReportResponse struct {
	Data entity.SecurityReport `json:"data"`
}

type BlockRequest struct {
	Phone  string `json:"phone" validate:"required,min=10"`
	Reason string `json:"reason"`
}

type BlockResponse struct {
	Phone   string `json:"phone"`
	Blocked bool   `json:"blocked"`
}
