package conversationHandler

import (
	"time"

	"DespachoJuridico/internal/api/conversation"
	contextPkg "DespachoJuridico/pkg/context"
	"DespachoJuridico/pkg/handlerUtil"
	"DespachoJuridico/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *ConversationHandler) GetStats(ctx *fiber.Ctx) error {
	errHandler := handlerUtil.New(h.log)

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, conversation.StatsResponse{
		Data: h.conversationService.Stats(),
	})
}

// GenerateReply lets the dashboard exercise the assistant outside WhatsApp,
// mostly to tune the prompt against real client phrasings.
func (h *ConversationHandler) GenerateReply(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	errHandler := handlerUtil.New(h.log)

	var req conversation.ReplyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "parse_request_body")
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 30*time.Second)
	defer cancel()

	intent := h.conversationService.TrackIncoming(req.UserID, "", req.Message)
	reply := h.conversationService.GenerateReply(c, req.UserID, req.Message, intent)
	h.conversationService.TrackOutgoing(req.UserID, reply)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		h.log.WithFields(log.Fields{
			"request_id": requestID,
			"intent":     intent.Intent,
		}).Info("Reply generated")

		return errHandler.HandleSuccess(ctx, fiber.StatusOK, conversation.ReplyResponse{
			Reply:  reply,
			Intent: intent.Intent,
		})
	}
}
