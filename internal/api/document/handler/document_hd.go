package documentHandler

import (
	"time"

	"DespachoJuridico/internal/api/document"
	"DespachoJuridico/internal/entity"
	contextPkg "DespachoJuridico/pkg/context"
	"DespachoJuridico/pkg/handlerUtil"
	"DespachoJuridico/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *DocumentHandler) GenerateDocument(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req document.GenerateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	record := entity.RecordFromMap(req.Record)

	complaint, path, err := h.documentService.SaveComplaint(c, record, req.ClientName)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "save_complaint")
	}

	if req.EmailTo != "" {
		if err := h.documentService.EmailComplaint(req.EmailTo, complaint); err != nil {
			// The document exists either way; an email failure is logged,
			// not surfaced as the request's outcome.
			h.log.WithFields(log.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Could not email generated complaint")
		}
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"file_path":  path,
	}).Info("Complaint generated")

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, document.GenerateResponse{
		Document: complaint,
		FilePath: path,
		Defects:  h.ticketService.DetectDefects(record),
	})
}
