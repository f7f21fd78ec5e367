package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/umath/internal/api/middleware"
	"github.com/GriffinCanCode/umath/internal/logging"
	"github.com/GriffinCanCode/umath/internal/service"
	"github.com/GriffinCanCode/umath/internal/types"
)

const (
	// MaxMessageSize bounds a single client message
	MaxMessageSize = 64 * 1024
	// MaxBatchCalls bounds the calls in one batch message
	MaxBatchCalls = 256
)

// Handler manages WebSocket connections
type Handler struct {
	exec     service.Executor
	logger   *logging.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. A nil logger discards output.
func NewHandler(exec service.Executor, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handler{
		exec:   exec,
		logger: logger.Named("ws"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true }, // same policy as CORS
		},
	}
}

// HandleConnection handles WebSocket upgrade and messages
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(MaxMessageSize)

	reqCtx := c.Request.Context()
	requestID := middleware.GetRequestID(c)

	h.send(conn, map[string]interface{}{
		"type":    "system",
		"message": "Connected to umath",
	})

	for {
		var msg types.WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("WebSocket read error", zap.Error(err))
			}
			return
		}

		var werr error
		switch msg.Type {
		case "execute":
			werr = h.handleExecute(reqCtx, conn, requestID, msg)
		case "batch":
			werr = h.handleBatch(reqCtx, conn, requestID, msg)
		case "ping":
			werr = h.send(conn, map[string]interface{}{"type": "pong", "id": msg.ID})
		default:
			werr = h.sendError(conn, msg.ID, "unknown message type: "+msg.Type)
		}
		if werr != nil {
			h.logger.Debug("WebSocket write failed", zap.Error(werr))
			return
		}
	}
}

func (h *Handler) handleExecute(ctx context.Context, conn *websocket.Conn, requestID string, msg types.WSMessage) error {
	if msg.ToolID == "" {
		return h.sendError(conn, msg.ID, "tool_id is required")
	}
	result := h.execute(ctx, requestID, msg.ToolID, msg.Params)
	return h.send(conn, map[string]interface{}{
		"type":      "result",
		"id":        msg.ID,
		"tool_id":   msg.ToolID,
		"result":    result,
		"timestamp": time.Now().Unix(),
	})
}

func (h *Handler) handleBatch(ctx context.Context, conn *websocket.Conn, requestID string, msg types.WSMessage) error {
	if len(msg.Calls) == 0 {
		return h.sendError(conn, msg.ID, "calls are required")
	}
	if len(msg.Calls) > MaxBatchCalls {
		return h.sendError(conn, msg.ID, "too many calls in batch")
	}

	failed := 0
	for i, call := range msg.Calls {
		result := h.execute(ctx, requestID, call.ToolID, call.Params)
		if !result.Success {
			failed++
		}
		if err := h.send(conn, map[string]interface{}{
			"type":      "result",
			"id":        msg.ID,
			"index":     i,
			"tool_id":   call.ToolID,
			"result":    result,
			"timestamp": time.Now().Unix(),
		}); err != nil {
			return err
		}
	}

	return h.send(conn, map[string]interface{}{
		"type":      "complete",
		"id":        msg.ID,
		"calls":     len(msg.Calls),
		"failed":    failed,
		"timestamp": time.Now().Unix(),
	})
}

// execute always yields a result; routing errors become failed results
func (h *Handler) execute(ctx context.Context, requestID, toolID string, params map[string]interface{}) *types.Result {
	appCtx := &types.Context{Source: "ws"}
	if requestID != "" {
		appCtx.RequestID = &requestID
	}

	result, err := h.exec.Execute(ctx, toolID, params, appCtx)
	if result == nil {
		msg := "no result"
		if err != nil {
			msg = err.Error()
		}
		result = &types.Result{Success: false, Error: &msg}
	}
	return result
}

func (h *Handler) send(conn *websocket.Conn, data interface{}) error {
	return conn.WriteJSON(data)
}

func (h *Handler) sendError(conn *websocket.Conn, id, msg string) error {
	return h.send(conn, map[string]interface{}{
		"type":      "error",
		"id":        id,
		"message":   msg,
		"timestamp": time.Now().Unix(),
	})
}
