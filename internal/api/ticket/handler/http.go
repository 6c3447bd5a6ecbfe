package ticketHandler

import (
	ticketService "DespachoJuridico/internal/api/ticket/service"
	"DespachoJuridico/internal/middleware"
	"DespachoJuridico/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TicketHandler struct {
	log           *logrus.Logger
	validator     *validator.Validate
	middleware    middleware.Middleware
	ticketService ticketService.ITicketService
	utils         utils.IUtils
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ts ticketService.ITicketService,
	utils utils.IUtils,
) *TicketHandler {
	return &TicketHandler{
		log:           log,
		validator:     validator,
		middleware:    middleware,
		ticketService: ts,
		utils:         utils,
	}
}

func (h *TicketHandler) Start(srv fiber.Router) {
	tickets := srv.Group("/tickets")
	tickets.Post("/analyze", h.AnalyzeTicket)
	tickets.Post("/analyze/direct", h.AnalyzeTicketDirect)
}
