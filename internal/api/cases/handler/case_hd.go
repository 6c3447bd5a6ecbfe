package caseHandler

import (
	"strconv"

	"DespachoJuridico/internal/api/cases"
	"DespachoJuridico/pkg/handlerUtil"
	"DespachoJuridico/pkg/log"
	"github.com/gofiber/fiber/v2"
)

func (h *CaseHandler) CreateConsultation(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	var req cases.CreateConsultationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	consultation, err := h.caseService.CreateConsultation(req.ClientPhone, req.ClientName, req.Issue, req.Urgency)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_consultation")
	}

	h.log.WithFields(log.Fields{
		"request_id":      requestID,
		"consultation_id": consultation.ID,
		"urgency":         consultation.Urgency,
	}).Info("Consultation created")

	return errHandler.HandleSuccess(ctx, fiber.StatusCreated, cases.ConsultationResponse{
		Data: consultation,
	})
}

func (h *CaseHandler) GetStats(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, cases.StatsResponse{
		Data: h.caseService.Stats(),
	})
}

func (h *CaseHandler) GetPending(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, cases.PendingResponse{
		Consultations: h.caseService.PendingConsultations(),
		UrgentItems:   h.caseService.UrgentItems(),
	})
}

func (h *CaseHandler) GetHearings(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	days := 7
	if raw := ctx.Query("days"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, cases.HearingsResponse{
		Hearings: h.caseService.UpcomingHearings(days),
	})
}
