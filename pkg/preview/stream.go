package preview

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/goey/pkg/timeline"
)

// streamHub tracks open frame streams so shutdown can close them.
type streamHub struct {
	server   *Server
	clients  map[*websocket.Conn]context.CancelFunc
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

func newStreamHub(s *Server) *streamHub {
	return &streamHub{
		server:  s,
		clients: make(map[*websocket.Conn]context.CancelFunc),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true // preview is a local design tool
			},
		},
	}
}

// handle streams the query's script, one JSON frame per message, then
// closes with a normal closure.
func (h *streamHub) handle(w http.ResponseWriter, r *http.Request) {
	logger := h.server.logger
	script, err := h.server.scriptFromQuery(r)
	if err != nil {
		h.server.badRequest(w, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("websocket upgrade failed", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	h.mu.Lock()
	h.clients[conn] = cancel
	h.mu.Unlock()
	defer h.remove(conn)

	// Reads only detect the client going away.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	ticker := time.NewTicker(h.server.config.FrameInterval)
	defer ticker.Stop()

	frames := 0
	err = timeline.Stream(ctx, script, h.server.timelineConfig(false), func(f timeline.Frame) error {
		if f.Index > 0 {
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		data, err := json.Marshal(f)
		if err != nil {
			return err
		}
		frames++
		return conn.WriteMessage(websocket.TextMessage, data)
	})
	if err != nil {
		logger.Debug("frame stream ended early", "frames", frames, "error", err)
		return
	}
	logger.Debug("frame stream complete", "frames", frames)
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"),
		time.Now().Add(time.Second))
}

func (h *streamHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	if cancel, ok := h.clients[conn]; ok {
		cancel()
		delete(h.clients, conn)
	}
	h.mu.Unlock()
	conn.Close()
}

func (h *streamHub) count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// closeAll cancels every open stream.
func (h *streamHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, cancel := range h.clients {
		cancel()
		conn.Close()
		delete(h.clients, conn)
	}
}
