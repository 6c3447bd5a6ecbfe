package securityHandler

import (
	"DespachoJuridico/internal/api/security"
	"DespachoJuridico/pkg/handlerUtil"
	"DespachoJuridico/pkg/log"
	"github.com/gofiber/fiber/v2"
)

func (h *SecurityHandler) GetReport(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, security.ReportResponse{
		Data: h.securityService.Report(),
	})
}

func (h *SecurityHandler) BlockNumber(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	var req security.BlockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.securityService.Block(req.Phone, req.Reason); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "block_number")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"phone":      req.Phone,
	}).Info("Number blocked")

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, security.BlockResponse{
		Phone:   req.Phone,
		Blocked: true,
	})
}

func (h *SecurityHandler) UnblockNumber(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	var req security.BlockRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.securityService.Unblock(req.Phone); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "unblock_number")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, security.BlockResponse{
		Phone:   req.Phone,
		Blocked: false,
	})
}
