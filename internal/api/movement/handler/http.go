package movementHandler

import (
	movementService "PhysioGolang/internal/api/movement/service"
	"PhysioGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type MovementHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	movementService movementService.IMovementService
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	ms movementService.IMovementService,
) *MovementHandler {
	return &MovementHandler{
		log:             log,
		validator:       validator,
		middleware:      middleware,
		movementService: ms,
	}
}

func (h *MovementHandler) Start(srv fiber.Router) {
	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	movement := srv.Group("/movement")

	// Frame analysis is camera-driven, so it gets rate limited per client
	movement.Use(h.middleware.NewRateLimiter)

	movement.Post("/analyze", h.AnalyzeMovement)

	movement.Use("/live", wsMiddleware)
	movement.Get("/live", websocket.New(h.handleLiveAnalysis))
}
