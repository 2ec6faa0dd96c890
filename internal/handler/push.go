package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dukerupert/smartshopper/internal/push"
	"github.com/dukerupert/smartshopper/internal/store"
	ws "github.com/dukerupert/smartshopper/internal/websocket"
)

// ReminderSender runs an expiry reminder pass on demand.
type ReminderSender interface {
	SendReminders(ctx context.Context) (int, error)
}

type PushHandler struct {
	pushStore *store.PushStore
	sender    push.Sender
	publicKey string
	reminders ReminderSender
	hub       Broadcaster
	logger    *slog.Logger
}

func NewPushHandler(ps *store.PushStore, sender push.Sender, publicKey string, reminders ReminderSender, hub Broadcaster, logger *slog.Logger) *PushHandler {
	return &PushHandler{
		pushStore: ps,
		sender:    sender,
		publicKey: publicKey,
		reminders: reminders,
		hub:       orNop(hub),
		logger:    logger,
	}
}

type subscribeRequest struct {
	Endpoint   string `json:"endpoint"`
	P256dh     string `json:"p256dh"`
	Auth       string `json:"auth"`
	DeviceName string `json:"device_name"`
}

// Subscribe handles POST /api/push/subscribe
func (h *PushHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Endpoint == "" || req.P256dh == "" || req.Auth == "" {
		writeError(w, http.StatusBadRequest, "endpoint, p256dh, and auth are required")
		return
	}

	sub, err := h.pushStore.CreateSubscription(req.Endpoint, req.P256dh, req.Auth, req.DeviceName)
	if err != nil {
		h.logger.Error("create push subscription", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save subscription")
		return
	}

	h.hub.Broadcast(ws.NewMessage(ws.EntitySubscription, ws.ActionCreated, strconv.FormatInt(sub.ID, 10), nil))
	writeJSON(w, http.StatusCreated, sub)
}

// Unsubscribe handles DELETE /api/push/subscriptions/{id}
func (h *PushHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.pushStore.DeleteSubscription(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "subscription not found")
			return
		}
		h.logger.Error("delete push subscription", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete subscription")
		return
	}

	h.hub.Broadcast(ws.NewMessage(ws.EntitySubscription, ws.ActionDeleted, strconv.FormatInt(id, 10), nil))
	w.WriteHeader(http.StatusNoContent)
}

// ListSubscriptions handles GET /api/push/subscriptions
func (h *PushHandler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.pushStore.List()
	if err != nil {
		h.logger.Error("list push subscriptions", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list subscriptions")
		return
	}
	writeJSON(w, http.StatusOK, subs)
}

// GetVAPIDKey handles GET /api/push/vapid-key
func (h *PushHandler) GetVAPIDKey(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"public_key": h.publicKey})
}

// TestNotification handles POST /api/push/test
func (h *PushHandler) TestNotification(w http.ResponseWriter, r *http.Request) {
	subs, err := h.pushStore.List()
	if err != nil {
		h.logger.Error("list push subscriptions", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list subscriptions")
		return
	}

	payload := push.Payload{
		Title: "Test Notification",
		Body:  "Push notifications are working!",
		URL:   "/",
		Tag:   "test",
	}

	sent := 0
	for _, sub := range subs {
		if err := h.sender.Send(r.Context(), &sub, payload); err != nil {
			if errors.Is(err, push.ErrExpired) {
				h.pushStore.DeleteByEndpoint(sub.Endpoint)
			}
			h.logger.Warn("test push send", "subscription_id", sub.ID, "error", err)
			continue
		}
		sent++
	}

	writeJSON(w, http.StatusOK, map[string]int{"sent": sent})
}

// SendReminders handles POST /api/push/reminders
func (h *PushHandler) SendReminders(w http.ResponseWriter, r *http.Request) {
	if h.reminders == nil {
		writeError(w, http.StatusServiceUnavailable, "reminders are not configured")
		return
	}
	sent, err := h.reminders.SendReminders(r.Context())
	if err != nil {
		h.logger.Error("send expiry reminders", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to send reminders")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"sent": sent})
}

func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
