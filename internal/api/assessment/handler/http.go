package assessmentHandler

import (
	assessmentService "PhysioGolang/internal/api/assessment/service"
	"PhysioGolang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AssessmentHandler struct {
	log               *logrus.Logger
	validator         *validator.Validate
	middleware        middleware.Middleware
	assessmentService assessmentService.IAssessmentService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as assessmentService.IAssessmentService,
) *AssessmentHandler {
	return &AssessmentHandler{
		log:               log,
		validator:         validate,
		middleware:        middleware,
		assessmentService: as,
	}
}

func (h *AssessmentHandler) Start(srv fiber.Router) {
	assessment := srv.Group("/assessment")

	// Conversational endpoints carry the session id in the body
	assessment.Post("/start", h.StartSession)
	assessment.Post("/problem-areas", h.ProcessProblemAreas)
	assessment.Post("/analyze", h.AnalyzeMovement)

	// Routine and results endpoints require the session token issued at start
	assessment.Use("/routine", h.middleware.NewTokenMiddleware)
	assessment.Post("/routine", h.GenerateRoutine)
	assessment.Post("/routine/share", h.ShareRoutine)

	assessment.Use("/results", h.middleware.NewTokenMiddleware)
	assessment.Get("/results", h.GetResults)
}
