// Package handler implements the JSON HTTP API.
package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/dukerupert/smartshopper/internal/model"
	ws "github.com/dukerupert/smartshopper/internal/websocket"
)

// maxBodyBytes limits request bodies, rule pack imports included.
const maxBodyBytes = 1 << 20

// Broadcaster publishes change notifications to connected clients.
type Broadcaster interface {
	Broadcast(msg ws.Message)
}

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(ws.Message) {}

func orNop(b Broadcaster) Broadcaster {
	if b == nil {
		return nopBroadcaster{}
	}
	return b
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}

// parseOptionalDate parses a YYYY-MM-DD or RFC 3339 date. An empty string
// gives nil.
func parseOptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := model.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
