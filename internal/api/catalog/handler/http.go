package catalogHandler

import (
	catalogService "PhysioGolang/internal/api/catalog/service"
	"PhysioGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CatalogHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	catalogService catalogService.ICatalogService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	cs catalogService.ICatalogService,
) *CatalogHandler {
	return &CatalogHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		catalogService: cs,
	}
}

func (h *CatalogHandler) Start(srv fiber.Router) {
	// The test catalog is public, no token required
	srv.Get("/tests", h.GetAllTests)
	srv.Get("/tests/area/:area", h.GetTestsByArea)
	srv.Get("/tests/:test_id", h.GetTestByID)
}
