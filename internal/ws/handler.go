package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Light-Brands/local-ide-sub000/internal/logging"
	"github.com/Light-Brands/local-ide-sub000/internal/monitoring"
	"github.com/Light-Brands/local-ide-sub000/internal/types"
	"github.com/Light-Brands/local-ide-sub000/internal/workspace"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins in dev
	},
}

// Handler pushes workspace state changes to rendering clients over
// WebSocket. Each change notification carries the kind of state that moved;
// clients re-read the full view lazily or use the inline copy.
type Handler struct {
	ws      *workspace.Manager
	log     *logging.Logger
	metrics *monitoring.Metrics
}

// NewHandler creates a WebSocket handler.
func NewHandler(ws *workspace.Manager, log *logging.Logger, metrics *monitoring.Metrics) *Handler {
	if log == nil {
		log = logging.NewNop()
	}
	return &Handler{ws: ws, log: log, metrics: metrics}
}

type swipePayload struct {
	Axis     string  `json:"axis"`
	Distance float64 `json:"distance"`
}

// HandleConnection upgrades the request and streams change notifications
// until the client goes away.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	if h.metrics != nil {
		h.metrics.WSConnections.Inc()
		defer h.metrics.WSConnections.Dec()
	}

	var writeMu sync.Mutex
	send := func(data interface{}) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(data)
	}

	send(map[string]interface{}{
		"type":     "welcome",
		"hydrated": h.ws.Hydrated(),
		"state":    h.ws.View(),
	})

	// Change notifications are coalesced through a small buffer; a slow
	// client drops intermediate kinds and recovers from the next full view.
	events := make(chan workspace.EventKind, 16)
	cancel := h.ws.Subscribe(func(ev workspace.Event) {
		select {
		case events <- ev.Kind:
		default:
		}
	})
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var msg types.WSMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			h.handleMessage(send, msg)
		}
	}()

	for {
		select {
		case kind := <-events:
			payload := map[string]interface{}{
				"type":      "update",
				"kind":      kind,
				"timestamp": time.Now().Unix(),
			}
			if kind == workspace.EventHydrated {
				payload["state"] = h.ws.View()
			}
			if err := send(payload); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (h *Handler) handleMessage(send func(interface{}) error, msg types.WSMessage) {
	switch msg.Type {
	case "ping":
		send(map[string]interface{}{"type": "pong"})
	case "state":
		send(map[string]interface{}{"type": "state", "state": h.ws.View()})
	case "swipe":
		var p swipePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			send(map[string]interface{}{"type": "error", "message": "malformed swipe payload"})
			return
		}
		if p.Axis == "horizontal" {
			h.ws.MobileSwipeHorizontal(p.Distance)
		} else {
			h.ws.MobileSwipeVertical(p.Distance)
		}
	case "double_tap":
		h.ws.MobileDoubleTap()
	case "terminal_output":
		h.ws.NotifyTerminalOutput()
	default:
		send(map[string]interface{}{"type": "error", "message": "unknown message type"})
	}
}
