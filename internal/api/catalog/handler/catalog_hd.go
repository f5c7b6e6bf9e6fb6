package catalogHandler

import (
	contextPkg "PhysioGolang/pkg/context"
	"PhysioGolang/pkg/handlerUtil"
	"PhysioGolang/pkg/log"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

func (h *CatalogHandler) GetAllTests(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing test catalog request")

	response, err := h.catalogService.GetAllTests(c)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_tests")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *CatalogHandler) GetTestsByArea(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing area tests request")

	area := ctx.Params("area")
	if area == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("area is required"), ctx.Path())
	}

	response, err := h.catalogService.GetTestsByArea(c, area)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_tests_by_area")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

func (h *CatalogHandler) GetTestByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing test detail request")

	testID := ctx.Params("test_id")
	if testID == "" {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("test_id is required"), ctx.Path())
	}

	response, err := h.catalogService.GetTestByID(c, testID)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_test_by_id")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}
