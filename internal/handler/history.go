package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dukerupert/smartshopper/internal/rules"
	"github.com/dukerupert/smartshopper/internal/store"
	ws "github.com/dukerupert/smartshopper/internal/websocket"
)

type HistoryHandler struct {
	history *store.HistoryStore
	hub     Broadcaster
	logger  *slog.Logger
}

func NewHistoryHandler(hs *store.HistoryStore, hub Broadcaster, logger *slog.Logger) *HistoryHandler {
	return &HistoryHandler{history: hs, hub: orNop(hub), logger: logger}
}

type purchaseRequest struct {
	ItemName         string   `json:"item_name"`
	PurchaseDate     string   `json:"purchase_date"`
	ExpiryTimeInDays *int     `json:"expiry_time_in_days"`
	ExpiryDate       string   `json:"expiry_date"`
	Quantity         *float64 `json:"quantity"`
	Cost             *float64 `json:"cost"`
}

// List handles GET /api/history. Pass ?all=true to include consumed and
// deleted records.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	all, _ := strconv.ParseBool(r.URL.Query().Get("all"))

	history, err := h.history.List(all)
	if err != nil {
		h.logger.Error("list history", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list history")
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// Create handles POST /api/history
func (h *HistoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	purchased, err := parseOptionalDate(req.PurchaseDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid purchase_date")
		return
	}
	expiry, err := parseOptionalDate(req.ExpiryDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expiry_date")
		return
	}
	if req.ExpiryTimeInDays != nil && *req.ExpiryTimeInDays < 0 {
		writeError(w, http.StatusBadRequest, "expiry_time_in_days must not be negative")
		return
	}

	in := store.PurchaseInput{
		ItemName:         req.ItemName,
		ExpiryTimeInDays: req.ExpiryTimeInDays,
		ExpiryDate:       expiry,
		Quantity:         req.Quantity,
		Cost:             req.Cost,
	}
	if purchased != nil {
		in.PurchaseDate = *purchased
	}

	record, err := h.history.Log(in)
	if err != nil {
		h.writeStoreError(w, "log purchase", err)
		return
	}

	h.hub.Broadcast(ws.NewMessage(ws.EntityHistory, ws.ActionCreated, record.ID, nil))
	writeJSON(w, http.StatusCreated, record)
}

// Consume handles POST /api/history/{id}/consume
func (h *HistoryHandler) Consume(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	record, err := h.history.MarkConsumed(id)
	if err != nil {
		h.writeStoreError(w, "mark consumed", err)
		return
	}

	h.hub.Broadcast(ws.NewMessage(ws.EntityHistory, ws.ActionConsumed, id, nil))
	writeJSON(w, http.StatusOK, record)
}

// Delete handles DELETE /api/history/{id}
func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.history.Delete(id); err != nil {
		h.writeStoreError(w, "delete purchase", err)
		return
	}

	h.hub.Broadcast(ws.NewMessage(ws.EntityHistory, ws.ActionDeleted, id, nil))
	w.WriteHeader(http.StatusNoContent)
}

func (h *HistoryHandler) writeStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, rules.ErrInvalidItem):
		writeError(w, http.StatusBadRequest, "item_name is required")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "purchase not found")
	default:
		h.logger.Error(op, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to "+op)
	}
}
