package conversationHandler

import (
	conversationService "DespachoJuridico/internal/api/conversation/service"
	"DespachoJuridico/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ConversationHandler struct {
	log                 *logrus.Logger
	validator           *validator.Validate
	middleware          middleware.Middleware
	conversationService conversationService.IConversationService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	cs conversationService.IConversationService,
) *ConversationHandler {
	return &ConversationHandler{
		log:                 log,
		validator:           validator,
		middleware:          middleware,
		conversationService: cs,
	}
}

func (h *ConversationHandler) Start(srv fiber.Router) {
	conversationsGroup := srv.Group("/conversations")
	conversationsGroup.Use(h.middleware.NewTokenMiddleware)
	conversationsGroup.Get("/stats", h.GetStats)
	conversationsGroup.Post("/reply", h.GenerateReply)
}
