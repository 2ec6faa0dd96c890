package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dukerupert/smartshopper/internal/rules"
	"github.com/dukerupert/smartshopper/internal/store"
	ws "github.com/dukerupert/smartshopper/internal/websocket"
)

type GroceryHandler struct {
	items  *store.GroceryStore
	hub    Broadcaster
	logger *slog.Logger
}

func NewGroceryHandler(gs *store.GroceryStore, hub Broadcaster, logger *slog.Logger) *GroceryHandler {
	return &GroceryHandler{items: gs, hub: orNop(hub), logger: logger}
}

type itemRequest struct {
	Name       string   `json:"name"`
	Quantity   *float64 `json:"quantity"`
	Unit       string   `json:"unit"`
	Category   string   `json:"category"`
	ExpiryDate string   `json:"expiry_date"`
}

func (req itemRequest) input() (store.ItemInput, error) {
	expiry, err := parseOptionalDate(req.ExpiryDate)
	if err != nil {
		return store.ItemInput{}, err
	}
	return store.ItemInput{
		Name:       req.Name,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		Category:   req.Category,
		ExpiryDate: expiry,
	}, nil
}

// List handles GET /api/items
func (h *GroceryHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.List()
	if err != nil {
		h.logger.Error("list items", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Create handles POST /api/items
func (h *GroceryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.input()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expiry_date")
		return
	}

	item, purchase, err := h.items.Add(in)
	if err != nil {
		h.writeStoreError(w, "add item", err)
		return
	}

	h.hub.Broadcast(ws.NewMessage(ws.EntityItem, ws.ActionCreated, item.ID, nil))
	h.hub.Broadcast(ws.NewMessage(ws.EntityHistory, ws.ActionCreated, purchase.ID, nil))
	writeJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/items/{id}
func (h *GroceryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req itemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.input()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid expiry_date")
		return
	}

	item, err := h.items.Update(id, in)
	if err != nil {
		h.writeStoreError(w, "update item", err)
		return
	}

	h.hub.Broadcast(ws.NewMessage(ws.EntityItem, ws.ActionUpdated, item.ID, nil))
	if in.ExpiryDate != nil {
		h.hub.Broadcast(ws.NewMessage(ws.EntityHistory, ws.ActionUpdated, "", map[string]any{"item_name": item.Name}))
	}
	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}
func (h *GroceryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.items.Delete(id); err != nil {
		h.writeStoreError(w, "delete item", err)
		return
	}

	h.hub.Broadcast(ws.NewMessage(ws.EntityItem, ws.ActionDeleted, id, nil))
	h.hub.Broadcast(ws.NewMessage(ws.EntityHistory, ws.ActionDeleted, "", nil))
	w.WriteHeader(http.StatusNoContent)
}

func (h *GroceryHandler) writeStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, rules.ErrInvalidItem):
		writeError(w, http.StatusBadRequest, "name is required")
	case errors.Is(err, store.ErrDuplicateItem):
		writeError(w, http.StatusConflict, "item is already on the list")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "item not found")
	default:
		h.logger.Error(op, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to "+op)
	}
}
