// Package assistant asks a generative model for suggestions when the rule
// engine has none to offer.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/dukerupert/smartshopper/internal/model"
	"github.com/dukerupert/smartshopper/internal/rules"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.0-flash"

// maxSuggestions caps how many lines are taken from a model reply.
const maxSuggestions = 10

var (
	ErrUnsupportedKind = errors.New("unsupported suggestion kind")
	ErrEmptyResponse   = errors.New("empty response from model")
)

// Request is the context handed to the model. Kind is one of the
// rules.Evaluator* names.
type Request struct {
	Kind    string
	History []model.PurchaseHistoryItem
	List    []model.GroceryItem
	Now     time.Time
}

// generator is the subset of *genai.Models used here.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini produces suggestions with the Gemini API.
type Gemini struct {
	models generator
	model  string
	logger *slog.Logger
}

// NewGemini creates a client for the Gemini API.
func NewGemini(ctx context.Context, apiKey, modelName string, logger *slog.Logger) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return newGemini(client.Models, modelName, logger), nil
}

func newGemini(models generator, modelName string, logger *slog.Logger) *Gemini {
	if modelName == "" {
		modelName = DefaultModel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Gemini{models: models, model: modelName, logger: logger}
}

// Suggest returns display-ready suggestion lines for req.
func (g *Gemini) Suggest(ctx context.Context, req Request) ([]string, error) {
	prompt, err := Prompt(req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	raw := responseText(resp)
	if raw == "" {
		return nil, ErrEmptyResponse
	}
	g.logger.Debug("model replied", "kind", req.Kind, "model", g.model, "length", len(raw), "duration", time.Since(start))

	suggestions, err := ParseSuggestions(raw)
	if err != nil {
		g.logger.Warn("unparseable model reply", "kind", req.Kind, "error", err)
		return nil, err
	}
	return suggestions, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

// Prompt builds the model prompt for a request.
func Prompt(req Request) (string, error) {
	var b strings.Builder
	b.WriteString("You are a helpful shopping assistant.\n")

	switch req.Kind {
	case rules.EvaluatorRePurchase:
		b.WriteString("Suggest items from the purchase history that are NOT on the current grocery list. Only suggest items the user has bought before.\n\n")
		writeHistory(&b, req.History)
		writeList(&b, req.List)
	case rules.EvaluatorHealthier:
		b.WriteString("Suggest a healthier alternative for each grocery item where one exists.\n\n")
		writeList(&b, req.List)
	case rules.EvaluatorCategory:
		b.WriteString("Suggest items that are commonly bought together with the items on the grocery list and are not on it yet.\n\n")
		writeList(&b, req.List)
	case rules.EvaluatorExpiry:
		b.WriteString("Check the purchase history for items that expire within three days or have already expired. ")
		b.WriteString(`Use "<item> will expire tomorrow." or "<item> has expired. Consider replacing it."` + "\n\n")
		writeHistory(&b, req.History)
		fmt.Fprintf(&b, "Current date: %s\n\n", req.Now.UTC().Format(time.DateOnly))
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedKind, req.Kind)
	}

	b.WriteString("Return a RAW JSON ARRAY of short strings, one per suggestion. Do NOT use markdown formatting.\n")
	return b.String(), nil
}

func writeHistory(b *strings.Builder, history []model.PurchaseHistoryItem) {
	b.WriteString("Purchase history:\n")
	for _, h := range history {
		if !h.Active() {
			continue
		}
		fmt.Fprintf(b, "- %s (purchased on %s", h.ItemName, h.PurchaseDate.UTC().Format(time.DateOnly))
		if h.ExpiryDate != nil {
			fmt.Fprintf(b, ", expires %s", h.ExpiryDate.UTC().Format(time.DateOnly))
		} else if h.ExpiryTimeInDays != nil {
			fmt.Fprintf(b, ", keeps %d days", *h.ExpiryTimeInDays)
		}
		b.WriteString(")\n")
	}
	b.WriteString("\n")
}

func writeList(b *strings.Builder, list []model.GroceryItem) {
	b.WriteString("Current grocery list:\n")
	for _, item := range list {
		fmt.Fprintf(b, "- %s\n", item.Name)
	}
	b.WriteString("\n")
}

// ParseSuggestions decodes a model reply. It accepts a JSON array of
// strings or an object holding one under "suggestions" or "notifications",
// optionally wrapped in a markdown code fence.
func ParseSuggestions(raw string) ([]string, error) {
	raw = stripFence(raw)

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		var wrapped struct {
			Suggestions   []string `json:"suggestions"`
			Notifications []string `json:"notifications"`
		}
		if err2 := json.Unmarshal([]byte(raw), &wrapped); err2 != nil {
			return nil, fmt.Errorf("parse model reply: %w", err)
		}
		list = append(wrapped.Suggestions, wrapped.Notifications...)
	}

	out := make([]string, 0, len(list))
	seen := make(map[string]bool, len(list))
	for _, s := range list {
		s = strings.TrimSpace(s)
		if s == "" || seen[strings.ToLower(s)] {
			continue
		}
		seen[strings.ToLower(s)] = true
		out = append(out, s)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out, nil
}

func stripFence(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	return strings.TrimSpace(raw)
}
