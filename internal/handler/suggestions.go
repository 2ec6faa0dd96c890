package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dukerupert/smartshopper/internal/assistant"
	"github.com/dukerupert/smartshopper/internal/model"
	"github.com/dukerupert/smartshopper/internal/rules"
	"github.com/dukerupert/smartshopper/internal/store"
)

// Suggestion sources reported by the per-kind endpoint.
const (
	SourceRules     = "rules"
	SourceAssistant = "assistant"
	SourceNone      = "none"
)

// Assistant produces suggestions when the rule engine has none.
type Assistant interface {
	Suggest(ctx context.Context, req assistant.Request) ([]string, error)
}

type kindMessages struct {
	needsHistory bool
	needsList    bool
	emptyInput   string
	noResults    string
	failed       string
}

var suggestionKinds = map[string]kindMessages{
	rules.EvaluatorRePurchase: {
		needsHistory: true,
		emptyInput:   "Your purchase history is empty. Add items to get re-purchase suggestions.",
		noResults:    "No re-purchase suggestions at this time. All your frequent items might be on your list already.",
		failed:       "Could not fetch re-purchase suggestions. Please try again later.",
	},
	rules.EvaluatorCategory: {
		needsList:  true,
		emptyInput: "Your grocery list is empty. Add items to get category suggestions.",
		noResults:  "No category suggestions for the items on your list.",
		failed:     "Could not fetch category suggestions. Please try again later.",
	},
	rules.EvaluatorHealthier: {
		needsList:  true,
		emptyInput: "Your grocery list is empty. Add items to get healthier suggestions.",
		noResults:  "No healthier alternatives found for the items on your list.",
		failed:     "Could not fetch healthier alternatives. Please try again later.",
	},
	rules.EvaluatorExpiry: {
		needsHistory: true,
		emptyInput:   "Your purchase history is empty. Add items to track their expiry.",
		noResults:    "No items are expiring soon or have expired.",
		failed:       "Could not fetch expiry reminders. Please try again later.",
	},
}

type SuggestionHandler struct {
	items     *store.GroceryStore
	history   *store.HistoryStore
	engine    *rules.Engine
	assistant Assistant
	logger    *slog.Logger
}

// NewSuggestionHandler creates the suggestion handler. A nil assistant
// disables the generative fallback.
func NewSuggestionHandler(gs *store.GroceryStore, hs *store.HistoryStore, engine *rules.Engine, a Assistant, logger *slog.Logger) *SuggestionHandler {
	return &SuggestionHandler{items: gs, history: hs, engine: engine, assistant: a, logger: logger}
}

type aggregateResponse struct {
	RePurchase []model.Suggestion   `json:"re_purchase"`
	Category   []model.Suggestion   `json:"category"`
	Healthier  []model.Suggestion   `json:"healthier"`
	Expiry     []model.ExpiryNotice `json:"expiry"`
	Errors     []string             `json:"errors"`
}

type kindResponse struct {
	Kind        string   `json:"kind"`
	Source      string   `json:"source"`
	Suggestions []string `json:"suggestions"`
}

func (h *SuggestionHandler) snapshot() ([]model.PurchaseHistoryItem, []model.GroceryItem, error) {
	history, err := h.history.ListForSuggestions()
	if err != nil {
		return nil, nil, err
	}
	list, err := h.items.List()
	if err != nil {
		return nil, nil, err
	}
	return history, list, nil
}

// All handles GET /api/suggestions
func (h *SuggestionHandler) All(w http.ResponseWriter, r *http.Request) {
	history, list, err := h.snapshot()
	if err != nil {
		h.logger.Error("load suggestion inputs", "error", err)
		writeError(w, http.StatusInternalServerError, "Could not fetch suggestions. Please try again later.")
		return
	}

	res := h.engine.Suggest(r.Context(), history, list)
	resp := aggregateResponse{
		RePurchase: nonNil(res.RePurchase),
		Category:   nonNil(res.Category),
		Healthier:  nonNil(res.Healthier),
		Expiry:     nonNil(res.Expiry),
		Errors:     []string{},
	}
	for _, err := range res.Errors {
		var evalErr *rules.EvaluatorError
		if errors.As(err, &evalErr) {
			resp.Errors = append(resp.Errors, suggestionKinds[evalErr.Evaluator].failed)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// Kind handles GET /api/suggestions/{kind}
func (h *SuggestionHandler) Kind(w http.ResponseWriter, r *http.Request) {
	kind := r.PathValue("kind")
	msgs, ok := suggestionKinds[kind]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown suggestion kind")
		return
	}

	history, list, err := h.snapshot()
	if err != nil {
		h.logger.Error("load suggestion inputs", "kind", kind, "error", err)
		writeError(w, http.StatusInternalServerError, msgs.failed)
		return
	}

	none := func(msg string) {
		writeJSON(w, http.StatusOK, kindResponse{Kind: kind, Source: SourceNone, Suggestions: []string{msg}})
	}
	if (msgs.needsHistory && len(history) == 0) || (msgs.needsList && len(list) == 0) {
		none(msgs.emptyInput)
		return
	}

	res := h.engine.Suggest(r.Context(), history, list)
	for _, err := range res.Errors {
		var evalErr *rules.EvaluatorError
		if errors.As(err, &evalErr) && evalErr.Evaluator == kind {
			none(msgs.failed)
			return
		}
	}

	if lines := displayLines(kind, res); len(lines) > 0 {
		writeJSON(w, http.StatusOK, kindResponse{Kind: kind, Source: SourceRules, Suggestions: lines})
		return
	}

	if h.assistant != nil {
		lines, err := h.assistant.Suggest(r.Context(), assistant.Request{
			Kind:    kind,
			History: history,
			List:    list,
			Now:     h.engine.Now(),
		})
		if err != nil {
			h.logger.Warn("assistant fallback failed", "kind", kind, "error", err)
		} else if len(lines) > 0 {
			writeJSON(w, http.StatusOK, kindResponse{Kind: kind, Source: SourceAssistant, Suggestions: lines})
			return
		}
	}

	none(msgs.noResults)
}

func displayLines(kind string, res rules.Result) []string {
	var suggestions []model.Suggestion
	switch kind {
	case rules.EvaluatorRePurchase:
		suggestions = res.RePurchase
	case rules.EvaluatorCategory:
		suggestions = res.Category
	case rules.EvaluatorHealthier:
		suggestions = res.Healthier
	case rules.EvaluatorExpiry:
		lines := make([]string, 0, len(res.Expiry))
		for _, n := range res.Expiry {
			lines = append(lines, n.Message)
		}
		return lines
	}
	lines := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		lines = append(lines, s.Item+": "+s.Reason)
	}
	return lines
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
