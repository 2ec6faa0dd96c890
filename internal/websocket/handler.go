package websocket

import (
	"net/http"
	"time"

	ws "github.com/coder/websocket"
)

// HandleWebSocket returns an HTTP handler that upgrades connections to
// WebSocket and runs them as Hub clients. With no origin patterns, any
// origin is accepted.
func HandleWebSocket(hub *Hub, originPatterns []string) http.HandlerFunc {
	opts := &ws.AcceptOptions{OriginPatterns: originPatterns}
	if len(originPatterns) == 0 {
		opts.InsecureSkipVerify = true
	}
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := ws.Accept(w, r, opts)
		if err != nil {
			hub.logger.Warn("websocket accept", "error", err)
			return
		}
		defer conn.CloseNow()

		start := time.Now()
		client := NewClient(hub, conn)
		hub.logger.Debug("websocket connected", "remote", r.RemoteAddr)
		client.Run(r.Context())
		conn.Close(ws.StatusNormalClosure, "")
		hub.logger.Debug("websocket closed", "remote", r.RemoteAddr, "connected_for", time.Since(start).Round(time.Second))
	}
}
