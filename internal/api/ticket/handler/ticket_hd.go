package ticketHandler

import (
	"encoding/base64"
	"errors"
	"io"
	"time"

	"DespachoJuridico/internal/api/ticket"
	contextPkg "DespachoJuridico/pkg/context"
	"DespachoJuridico/pkg/handlerUtil"
	"DespachoJuridico/pkg/log"
	"DespachoJuridico/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

// imageFromRequest accepts either a multipart upload under "image" or a JSON
// body with a base64 payload, mirroring both client shapes the bot and the
// admin panel produce.
func (h *TicketHandler) imageFromRequest(ctx *fiber.Ctx, requestID string) ([]byte, string, error) {
	file, err := ctx.FormFile("image")
	if err == nil {
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"file_name":  file.Filename,
			"file_size":  file.Size,
		}).Debug("Processing file upload")

		if err := h.utils.ValidateImageFile(file); err != nil {
			switch {
			case errors.Is(err, utils.ErrFileTooLarge):
				return nil, "", ticket.ErrFileTooLarge
			case errors.Is(err, utils.ErrNotAnImage):
				return nil, "", ticket.ErrInvalidFileType
			}
			return nil, "", err
		}

		fileContent, err := file.Open()
		if err != nil {
			return nil, "", err
		}
		defer fileContent.Close()

		imageBytes, err := io.ReadAll(fileContent)
		if err != nil {
			return nil, "", err
		}

		mimeType := file.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = h.utils.MimeTypeFromFilename(file.Filename)
		}

		return imageBytes, mimeType, nil
	}

	var req ticket.AnalyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, "", err
	}

	if err := h.validator.Struct(req); err != nil {
		return nil, "", err
	}

	imageBytes, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return nil, "", ticket.ErrBadRequest
	}

	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	return imageBytes, mimeType, nil
}

func (h *TicketHandler) AnalyzeTicket(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing ticket analysis request")

	imageBytes, mimeType, err := h.imageFromRequest(ctx, requestID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "read_ticket_image")
	}

	result := h.ticketService.Analyze(c, imageBytes, mimeType)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"success":    result.Success,
			"percent":    result.Completeness.Percent,
		}).Info("Ticket analysis request served")
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, ticket.AnalyzeResponse{
			Data: result,
		})
	}
}

func (h *TicketHandler) AnalyzeTicketDirect(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	var req ticket.AnalyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	result := h.ticketService.AnalyzeDirect(c, req.ImageBase64, mimeType)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, ticket.AnalyzeResponse{
			Data: result,
		})
	}
}
