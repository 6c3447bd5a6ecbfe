package caseHandler

import (
	caseService "DespachoJuridico/internal/api/cases/service"
	"DespachoJuridico/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CaseHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	caseService caseService.ICaseService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	cs caseService.ICaseService,
) *CaseHandler {
	return &CaseHandler{
		log:         log,
		validator:   validator,
		middleware:  middleware,
		caseService: cs,
	}
}

func (h *CaseHandler) Start(srv fiber.Router) {
	srv.Post("/consultations", h.CreateConsultation)

	casesGroup := srv.Group("/cases")
	casesGroup.Use(h.middleware.NewTokenMiddleware)
	casesGroup.Get("/stats", h.GetStats)
	casesGroup.Get("/pending", h.GetPending)
	casesGroup.Get("/hearings", h.GetHearings)
}
