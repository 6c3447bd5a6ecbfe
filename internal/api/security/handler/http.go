package securityHandler

import (
	securityService "DespachoJuridico/internal/api/security/service"
	"DespachoJuridico/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SecurityHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	securityService securityService.ISecurityService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ss securityService.ISecurityService,
) *SecurityHandler {
	return &SecurityHandler{
		log:             log,
		validator:       validator,
		middleware:      middleware,
		securityService: ss,
	}
}

func (h *SecurityHandler) Start(srv fiber.Router) {
	securityGroup := srv.Group("/security")
	securityGroup.Use(h.middleware.NewTokenMiddleware)
	securityGroup.Get("/report", h.GetReport)
	securityGroup.Post("/block", h.BlockNumber)
	securityGroup.Post("/unblock", h.UnblockNumber)
}
