package config

import (
	"PhysioGolang/database/postgres"
	assessmentHandler "PhysioGolang/internal/api/assessment/handler"
	assessmentRepository "PhysioGolang/internal/api/assessment/repository"
	assessmentService "PhysioGolang/internal/api/assessment/service"
	catalogHandler "PhysioGolang/internal/api/catalog/handler"
	catalogService "PhysioGolang/internal/api/catalog/service"
	movementHandler "PhysioGolang/internal/api/movement/handler"
	movementService "PhysioGolang/internal/api/movement/service"
	"PhysioGolang/internal/middleware"
	"PhysioGolang/pkg/gemini"
	"PhysioGolang/pkg/nlp"
	"PhysioGolang/pkg/openai"
	"PhysioGolang/pkg/redis"
	"PhysioGolang/pkg/s3"
	"PhysioGolang/pkg/smtp"
	"PhysioGolang/pkg/utils"
	websocketPkg "PhysioGolang/pkg/websocket"
	"PhysioGolang/pkg/whatsapp"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"os"
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
	poseWebsocket  websocketPkg.IWebsocket
	whatsappClient whatsapp.IWhatsappSender
	chatGPTClient  openai.IChatGPT
	geminiClient   gemini.IGemini
	s3Client       s3.ItfS3
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

func WithPoseWebSocket(webSocket websocketPkg.IWebsocket) ServerOption {
	return func(s *Server) error {
		s.poseWebsocket = webSocket
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

// WithWhatsappClient pairs the WhatsApp device at boot. The assessment flow
// works without it; only routine sharing over WhatsApp goes away.
func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		client, err := whatsapp.New()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("WhatsApp client unavailable, routine sharing over WhatsApp is disabled: %v", err)
			}
			return nil
		}
		s.whatsappClient = client
		return nil
	}
}

// WithChatGPTClient configures the OpenAI provider when an API key is set.
func WithChatGPTClient() ServerOption {
	return func(s *Server) error {
		if os.Getenv("OPENAI_API_KEY") == "" {
			if s.log != nil {
				s.log.Warn("OPENAI_API_KEY not set, OpenAI responses are disabled")
			}
			return nil
		}
		s.chatGPTClient = openai.NewChatGPT()
		return nil
	}
}

// WithGeminiClient configures the Gemini provider when an API key is set.
func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Gemini client unavailable, Gemini responses are disabled: %v", err)
			}
			return nil
		}
		s.geminiClient = client
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Test Catalog
	catalogServices := catalogService.NewCatalogService(s.log)
	catalogHandlers := catalogHandler.New(s.log, s.validator, s.middleware, catalogServices)

	// Movement Analysis
	movementServices := movementService.NewMovementService(s.log, s.poseWebsocket, s.utils)
	movementHandlers := movementHandler.New(s.log, s.validator, s.middleware, movementServices)

	// Assessment Flow
	painDetector := nlp.NewPainDetector()
	painExtractor := nlp.NewPainExtractor()
	assessmentRepo := assessmentRepository.New(s.db, s.log)
	assessmentServices := assessmentService.NewAssessmentService(
		s.log,
		assessmentRepo,
		s.redisServer,
		s.s3Client,
		s.smtpMailer,
		s.whatsappClient,
		s.chatGPTClient,
		s.geminiClient,
		painDetector,
		painExtractor,
		movementServices,
		s.utils,
	)
	assessmentHandlers := assessmentHandler.New(s.log, s.validator, s.middleware, assessmentServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, catalogHandlers, movementHandlers, assessmentHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
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
		return ctx.JSON(fiber.Map{
			"message": "Tara Backend is ready to assess!",
		})
	})
}
