package handler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/smartshopper/internal/model"
	"github.com/dukerupert/smartshopper/internal/rulepack"
	"github.com/dukerupert/smartshopper/internal/rules"
	"github.com/dukerupert/smartshopper/internal/store"
	ws "github.com/dukerupert/smartshopper/internal/websocket"
)

// RuleHandler manages user rule overrides.
type RuleHandler struct {
	rules  *store.RuleStore
	engine *rules.Engine
	hub    Broadcaster
	logger *slog.Logger
}

func NewRuleHandler(rs *store.RuleStore, engine *rules.Engine, hub Broadcaster, logger *slog.Logger) *RuleHandler {
	return &RuleHandler{rules: rs, engine: engine, hub: orNop(hub), logger: logger}
}

// List handles GET /api/rules
func (h *RuleHandler) List(w http.ResponseWriter, r *http.Request) {
	overrides, err := h.rules.LoadOverrides(r.Context())
	if err != nil {
		h.logger.Error("load rule overrides", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load rules")
		return
	}
	writeJSON(w, http.StatusOK, overrides)
}

// Effective handles GET /api/rules/effective
func (h *RuleHandler) Effective(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Tables(r.Context()).RuleSet())
}

// SaveHealthier handles PUT /api/rules/healthier
func (h *RuleHandler) SaveHealthier(w http.ResponseWriter, r *http.Request) {
	var req model.HealthierAlternative
	if !decodeJSON(w, r, &req) {
		return
	}
	saved, err := h.rules.SaveHealthier(req)
	if err != nil {
		h.writeStoreError(w, "save healthier alternative", err)
		return
	}
	h.broadcast(ws.ActionUpdated, saved.ID)
	writeJSON(w, http.StatusOK, saved)
}

// DeleteHealthier handles DELETE /api/rules/healthier/{id}
func (h *RuleHandler) DeleteHealthier(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.rules.DeleteHealthier)
}

// SaveAssociation handles PUT /api/rules/associations
func (h *RuleHandler) SaveAssociation(w http.ResponseWriter, r *http.Request) {
	var req model.CategoryAssociation
	if !decodeJSON(w, r, &req) {
		return
	}
	saved, err := h.rules.SaveAssociation(req)
	if err != nil {
		h.writeStoreError(w, "save category association", err)
		return
	}
	h.broadcast(ws.ActionUpdated, saved.ID)
	writeJSON(w, http.StatusOK, saved)
}

// DeleteAssociation handles DELETE /api/rules/associations/{id}
func (h *RuleHandler) DeleteAssociation(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.rules.DeleteAssociation)
}

// SaveExpiryRule handles PUT /api/rules/expiry
func (h *RuleHandler) SaveExpiryRule(w http.ResponseWriter, r *http.Request) {
	var req model.DefaultExpiryRule
	if !decodeJSON(w, r, &req) {
		return
	}
	saved, err := h.rules.SaveExpiryRule(req)
	if err != nil {
		h.writeStoreError(w, "save expiry rule", err)
		return
	}
	h.broadcast(ws.ActionUpdated, saved.ID)
	writeJSON(w, http.StatusOK, saved)
}

// DeleteExpiryRule handles DELETE /api/rules/expiry/{id}
func (h *RuleHandler) DeleteExpiryRule(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, h.rules.DeleteExpiryRule)
}

func (h *RuleHandler) delete(w http.ResponseWriter, r *http.Request, del func(id string) error) {
	id := r.PathValue("id")
	if err := del(id); err != nil {
		h.writeStoreError(w, "delete rule", err)
		return
	}
	h.broadcast(ws.ActionDeleted, id)
	w.WriteHeader(http.StatusNoContent)
}

// Export handles GET /api/rules/export?format=json|yaml&scope=overrides|effective
func (h *RuleHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := rulepack.FormatJSON
	if f := q.Get("format"); f != "" {
		var err error
		if format, err = rulepack.ParseFormat(f); err != nil {
			writeError(w, http.StatusBadRequest, "format must be json or yaml")
			return
		}
	}

	var rs *model.RuleSet
	switch q.Get("scope") {
	case "", "overrides":
		var err error
		if rs, err = h.rules.LoadOverrides(r.Context()); err != nil {
			h.logger.Error("load rule overrides", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to export rules")
			return
		}
	case "effective":
		rs = h.engine.Tables(r.Context()).RuleSet()
	default:
		writeError(w, http.StatusBadRequest, "scope must be overrides or effective")
		return
	}

	data, err := rulepack.Encode(rs, format)
	if err != nil {
		h.logger.Error("encode rule pack", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to export rules")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="rules.%s"`, format))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Import handles POST /api/rules/import. The body replaces every stored
// override. The format comes from ?format or the Content-Type header.
func (h *RuleHandler) Import(w http.ResponseWriter, r *http.Request) {
	format := rulepack.FormatJSON
	if f := r.URL.Query().Get("format"); f != "" {
		var err error
		if format, err = rulepack.ParseFormat(f); err != nil {
			writeError(w, http.StatusBadRequest, "format must be json or yaml")
			return
		}
	} else if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		format = rulepack.FormatYAML
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "rule pack too large")
		return
	}
	rs, err := rulepack.Decode(body, format)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid rule pack")
		return
	}
	if err := rulepack.Validate(rs); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "invalid rule pack",
			"details": strings.Split(err.Error(), "\n"),
		})
		return
	}

	if err := h.rules.ReplaceAll(rs); err != nil {
		h.writeStoreError(w, "import rules", err)
		return
	}

	h.logger.Info("rules imported",
		"healthier", len(rs.HealthierAlternatives),
		"associations", len(rs.CategoryAssociations),
		"expiry", len(rs.DefaultExpiryRules),
	)
	h.broadcast(ws.ActionImported, "")
	h.List(w, r)
}

// Reset handles POST /api/rules/reset
func (h *RuleHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.rules.Reset(); err != nil {
		h.writeStoreError(w, "reset rules", err)
		return
	}
	h.broadcast(ws.ActionReset, "")
	w.WriteHeader(http.StatusNoContent)
}

func (h *RuleHandler) broadcast(action, id string) {
	h.hub.Broadcast(ws.NewMessage(ws.EntityRule, action, id, nil))
}

func (h *RuleHandler) writeStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, rules.ErrInvalidItem):
		writeError(w, http.StatusBadRequest, "rule is missing a name, items or a positive day count")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "rule not found")
	default:
		h.logger.Error(op, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to "+op)
	}
}
