package documentHandler

import (
	documentService "DespachoJuridico/internal/api/document/service"
	ticketService "DespachoJuridico/internal/api/ticket/service"
	"DespachoJuridico/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type DocumentHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	documentService documentService.IDocumentService
	ticketService   ticketService.ITicketService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ds documentService.IDocumentService,
	ts ticketService.ITicketService,
) *DocumentHandler {
	return &DocumentHandler{
		log:             log,
		validator:       validator,
		middleware:      middleware,
		documentService: ds,
		ticketService:   ts,
	}
}

func (h *DocumentHandler) Start(srv fiber.Router) {
	tickets := srv.Group("/tickets")
	tickets.Post("/document", h.GenerateDocument)
}
