package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/genai"

	"github.com/dukerupert/smartshopper/internal/model"
	"github.com/dukerupert/smartshopper/internal/rules"
)

type fakeGenerator struct {
	reply  string
	err    error
	model  string
	prompt string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: f.reply}}}},
		},
	}, nil
}

func TestParseSuggestions(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{"array", `["oat milk", "brown rice"]`, []string{"oat milk", "brown rice"}, false},
		{"fenced", "```json\n[\"apples\"]\n```", []string{"apples"}, false},
		{"bare fence", "```\n[\"apples\"]\n```", []string{"apples"}, false},
		{"wrapped", `{"suggestions": ["tea"]}`, []string{"tea"}, false},
		{"notifications", `{"notifications": ["Milk has expired. Consider replacing it."]}`, []string{"Milk has expired. Consider replacing it."}, false},
		{"blank and duplicate", `["Tea", " ", "tea", "lemon"]`, []string{"Tea", "lemon"}, false},
		{"empty array", `[]`, []string{}, false},
		{"prose", "Here are some ideas: apples", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSuggestions(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSuggestionsCapsLength(t *testing.T) {
	raw := `["a1","a2","a3","a4","a5","a6","a7","a8","a9","a10","a11","a12"]`
	got, err := ParseSuggestions(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(got) != maxSuggestions {
		t.Errorf("got %d suggestions, want %d", len(got), maxSuggestions)
	}
}

func TestPrompt(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	days := 7
	req := Request{
		History: []model.PurchaseHistoryItem{
			{ItemName: "Milk", PurchaseDate: now.AddDate(0, 0, -6), ExpiryTimeInDays: &days},
			{ItemName: "Old cheese", PurchaseDate: now.AddDate(0, 0, -20), Deleted: true},
		},
		List: []model.GroceryItem{{Name: "White bread"}},
		Now:  now,
	}

	req.Kind = rules.EvaluatorRePurchase
	p, err := Prompt(req)
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	for _, want := range []string{"- Milk (purchased on 2024-01-04, keeps 7 days)", "- White bread", "RAW JSON ARRAY"} {
		if !strings.Contains(p, want) {
			t.Errorf("re-purchase prompt missing %q:\n%s", want, p)
		}
	}
	if strings.Contains(p, "Old cheese") {
		t.Error("deleted records should not be sent to the model")
	}

	req.Kind = rules.EvaluatorExpiry
	p, _ = Prompt(req)
	if !strings.Contains(p, "Current date: 2024-01-10") {
		t.Errorf("expiry prompt missing current date:\n%s", p)
	}

	req.Kind = rules.EvaluatorHealthier
	p, _ = Prompt(req)
	if strings.Contains(p, "Milk") {
		t.Error("healthier prompt should only describe the list")
	}

	req.Kind = "weather"
	if _, err := Prompt(req); !errors.Is(err, ErrUnsupportedKind) {
		t.Errorf("err = %v, want ErrUnsupportedKind", err)
	}
}

func TestGeminiSuggest(t *testing.T) {
	gen := &fakeGenerator{reply: "```json\n[\"brown bread\"]\n```"}
	g := newGemini(gen, "", nil)

	got, err := g.Suggest(context.Background(), Request{
		Kind: rules.EvaluatorHealthier,
		List: []model.GroceryItem{{Name: "white bread"}},
	})
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if diff := cmp.Diff([]string{"brown bread"}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if gen.model != DefaultModel {
		t.Errorf("model = %q, want %q", gen.model, DefaultModel)
	}
	if !strings.Contains(gen.prompt, "white bread") {
		t.Errorf("prompt did not include list: %q", gen.prompt)
	}
}

func TestGeminiSuggestErrors(t *testing.T) {
	req := Request{Kind: rules.EvaluatorCategory}

	g := newGemini(&fakeGenerator{err: errors.New("quota exceeded")}, "gemini-test", nil)
	if _, err := g.Suggest(context.Background(), req); err == nil {
		t.Error("expected generate error")
	}

	g = newGemini(&fakeGenerator{reply: "   "}, "gemini-test", nil)
	if _, err := g.Suggest(context.Background(), req); !errors.Is(err, ErrEmptyResponse) {
		t.Errorf("err = %v, want ErrEmptyResponse", err)
	}

	g = newGemini(&fakeGenerator{reply: "I cannot help with that."}, "gemini-test", nil)
	if _, err := g.Suggest(context.Background(), req); err == nil {
		t.Error("expected parse error")
	}
}

func TestNewGeminiRequiresKey(t *testing.T) {
	if _, err := NewGemini(context.Background(), "", "", nil); err == nil {
		t.Error("expected error for missing api key")
	}
}
