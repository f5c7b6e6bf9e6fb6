package movementHandler

import (
	"PhysioGolang/internal/api/movement"
	contextPkg "PhysioGolang/pkg/context"
	"PhysioGolang/pkg/handlerUtil"
	"PhysioGolang/pkg/log"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/net/context"
)

func (h *MovementHandler) AnalyzeMovement(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing movement analysis request")

	var req movement.AnalyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	response, err := h.movementService.AnalyzeMovement(c, req)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "analyze_movement")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, response)
	}
}

// handleLiveAnalysis serves the live analysis socket. Clients first send a
// JSON frame naming the test, then stream either binary camera frames for
// pose estimation or JSON frames carrying pre-extracted keypoints.
func (h *MovementHandler) handleLiveAnalysis(c *websocket.Conn) {
	h.log.Info("Live analysis WebSocket client connected")
	defer h.log.Info("Live analysis WebSocket client disconnected")

	c.SetPingHandler(func(data string) error {
		h.log.Debug("Received ping, sending pong")
		if err := c.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(5*time.Second)); err != nil {
			h.log.Errorf("Error sending pong: %v", err)
		}
		return nil
	})

	maxReadTimeout := 60 * time.Second
	currentTestID := ""

	for {
		if err := c.SetReadDeadline(time.Now().Add(maxReadTimeout)); err != nil {
			h.log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.log.Errorf("Live analysis WebSocket error: %v", err)
			} else {
				h.log.Info("Live analysis WebSocket connection closed")
			}
			break
		}

		switch messageType {
		case websocket.TextMessage:
			var frame movement.LiveFrame
			if err := json.Unmarshal(message, &frame); err != nil {
				h.log.Errorf("Error parsing live frame: %v", err)
				if writeErr := c.WriteJSON(map[string]string{"error": "invalid frame payload"}); writeErr != nil {
					h.log.Errorf("Error sending error response: %v", writeErr)
					return
				}
				continue
			}

			if frame.TestID != "" {
				currentTestID = frame.TestID
			}
			if currentTestID == "" {
				if writeErr := c.WriteJSON(map[string]string{"error": "select a test_id before sending frames"}); writeErr != nil {
					h.log.Errorf("Error sending error response: %v", writeErr)
					return
				}
				continue
			}

			if len(frame.Keypoints) == 0 {
				h.log.Infof("Live analysis switched to test %s", currentTestID)
				if err := h.writeLiveResponse(c, movement.LiveReady{Status: "ready", TestID: currentTestID}); err != nil {
					h.log.Errorf("Error acknowledging test selection: %v", err)
					return
				}
				continue
			}

			response, err := h.movementService.AnalyzeMovement(context.Background(), movement.AnalyzeRequest{
				TestID:    currentTestID,
				Keypoints: frame.Keypoints,
			})
			if err != nil {
				h.log.Errorf("Error analyzing live keypoints: %v", err)
				if writeErr := c.WriteJSON(map[string]string{"error": err.Error()}); writeErr != nil {
					h.log.Errorf("Error sending error response: %v", writeErr)
					return
				}
				continue
			}

			if err := h.writeLiveResponse(c, response); err != nil {
				h.log.Errorf("Error writing analysis response: %v", err)
				return
			}

		case websocket.BinaryMessage:
			if currentTestID == "" {
				if writeErr := c.WriteJSON(map[string]string{"error": "select a test_id before sending frames"}); writeErr != nil {
					h.log.Errorf("Error sending error response: %v", writeErr)
					return
				}
				continue
			}

			response, err := h.movementService.ProcessLiveFrame(currentTestID, message)
			if err != nil {
				h.log.Errorf("Error processing live frame: %v", err)
				if writeErr := c.WriteJSON(map[string]string{"error": err.Error()}); writeErr != nil {
					h.log.Errorf("Error sending error response: %v", writeErr)
					return
				}
				continue
			}

			if err := h.writeLiveResponse(c, response); err != nil {
				h.log.Errorf("Error writing analysis response: %v", err)
				return
			}

		default:
			h.log.Warnf("Received unexpected message type: %d", messageType)
		}
	}
}

func (h *MovementHandler) writeLiveResponse(c *websocket.Conn, response interface{}) error {
	if err := c.SetWriteDeadline(time.Now().Add(10 * time.Second)); err != nil {
		return err
	}
	if err := c.WriteJSON(response); err != nil {
		return err
	}
	return c.SetWriteDeadline(time.Time{})
}
