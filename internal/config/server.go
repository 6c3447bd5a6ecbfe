package config

import (
	"DespachoJuridico/database/postgres"
	caseHandler "DespachoJuridico/internal/api/cases/handler"
	caseRepository "DespachoJuridico/internal/api/cases/repository"
	caseService "DespachoJuridico/internal/api/cases/service"
	conversationHandler "DespachoJuridico/internal/api/conversation/handler"
	conversationRepository "DespachoJuridico/internal/api/conversation/repository"
	conversationService "DespachoJuridico/internal/api/conversation/service"
	securityHandler "DespachoJuridico/internal/api/security/handler"
	securityRepository "DespachoJuridico/internal/api/security/repository"
	securityService "DespachoJuridico/internal/api/security/service"
	documentHandler "DespachoJuridico/internal/api/document/handler"
	documentService "DespachoJuridico/internal/api/document/service"
	ticketHandler "DespachoJuridico/internal/api/ticket/handler"
	ticketService "DespachoJuridico/internal/api/ticket/service"
	"DespachoJuridico/internal/assets"
	"DespachoJuridico/internal/bot"
	"DespachoJuridico/internal/middleware"
	"DespachoJuridico/pkg/gemini"
	"DespachoJuridico/pkg/groq"
	"DespachoJuridico/pkg/nlp"
	"DespachoJuridico/pkg/redis"
	"DespachoJuridico/pkg/s3"
	"DespachoJuridico/pkg/smtp"
	"DespachoJuridico/pkg/utils"
	"DespachoJuridico/pkg/vision"
	"DespachoJuridico/pkg/whatsapp"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
	"path/filepath"
)

type ServerOption func(*Server) error

type Server struct {
	engine         *fiber.App
	db             *sqlx.DB
	log            *logrus.Logger
	middleware     middleware.Middleware
	validator      *validator.Validate
	utils          utils.IUtils
	handlers       []handler
	redisServer    redis.IRedis
	smtpMailer     smtp.ItfSmtp
	whatsappClient whatsapp.IWhatsappClient
	geminiClient   gemini.IGemini
	visionClient   vision.ItfVision
	groqClient     groq.IGroq
	s3Client       s3.ItfS3
	bot            *bot.Bot
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		client, err := whatsapp.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize WhatsApp client: %v", err)
			}
			return fmt.Errorf("failed to create WhatsApp client: %w", err)
		}
		s.whatsappClient = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithVisionClient() ServerOption {
	return func(s *Server) error {
		client, err := vision.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Vision client: %v", err)
			}
			return fmt.Errorf("failed to create Vision client: %w", err)
		}
		s.visionClient = client
		return nil
	}
}

func WithGroqClient() ServerOption {
	return func(s *Server) error {
		client, err := groq.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Groq client: %v", err)
			}
			return fmt.Errorf("failed to create Groq client: %w", err)
		}
		s.groqClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() error {
	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "storage/data"
	}

	// Ticket Domain
	ticketServices := ticketService.NewTicketService(s.log, s.visionClient, s.groqClient, s.geminiClient, s.utils)
	ticketHandlers := ticketHandler.New(s.log, s.validator, s.middleware, ticketServices, s.utils)

	// Case Domain
	caseRepo, err := caseRepository.New(filepath.Join(dataDir, "cases.json"), s.log)
	if err != nil {
		return fmt.Errorf("failed to load case ledger: %w", err)
	}
	caseServices := caseService.NewCaseService(s.log, caseRepo)
	caseHandlers := caseHandler.New(s.log, s.validator, s.middleware, caseServices)

	// Document Domain
	documentServices := documentService.NewDocumentService(s.log, s.smtpMailer, s.utils, os.Getenv("DOCUMENTS_DIR"))
	documentHandlers := documentHandler.New(s.log, s.validator, s.middleware, documentServices, ticketServices)

	// Conversation Domain
	nlpProcessor := nlp.NewProcessor()
	conversationRepo, err := conversationRepository.New(filepath.Join(dataDir, "conversation_analytics.json"), s.log)
	if err != nil {
		return fmt.Errorf("failed to load conversation book: %w", err)
	}
	conversationServices := conversationService.NewConversationService(s.log, conversationRepo, s.groqClient, nlpProcessor)
	conversationHandlers := conversationHandler.New(s.log, s.validator, s.middleware, conversationServices)

	// Security Domain
	securityRepo, err := securityRepository.New(filepath.Join(dataDir, "blocked-numbers.json"), s.log)
	if err != nil {
		return fmt.Errorf("failed to load blocklist: %w", err)
	}
	securityServices := securityService.NewSecurityService(s.log, securityRepo, s.redisServer, nlpProcessor)
	securityHandlers := securityHandler.New(s.log, s.validator, s.middleware, securityServices)

	// WhatsApp bot
	imagesDir := os.Getenv("MARKETING_IMAGES_DIR")
	if imagesDir == "" {
		imagesDir = "storage/images/marketing"
	}
	catalog := assets.NewCatalog(imagesDir)
	s.bot = bot.New(s.log, s.whatsappClient, ticketServices, caseServices, conversationServices, securityServices, s.redisServer, s.s3Client, catalog, s.utils)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, ticketHandlers, caseHandlers, documentHandlers, conversationHandlers, securityHandlers)

	return nil
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	router := s.engine.Group("/api/v1", s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	if s.bot != nil {
		s.bot.Start()
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.whatsappClient != nil {
			s.whatsappClient.Disconnect()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		dbStatus := "ok"
		if s.db == nil {
			dbStatus = "not configured"
		} else if err := s.db.Ping(); err != nil {
			dbStatus = "unreachable"
		}

		whatsappStatus := "disconnected"
		if s.whatsappClient != nil && s.whatsappClient.IsConnected() {
			whatsappStatus = "connected"
		}

		return ctx.JSON(fiber.Map{
			"message":  "Server is Healthy!",
			"database": dbStatus,
			"whatsapp": whatsappStatus,
		})
	})
}
