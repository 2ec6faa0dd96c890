package rules

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dukerupert/smartshopper/internal/clock"
	"github.com/dukerupert/smartshopper/internal/model"
)

// DefaultLoadTimeout bounds how long the engine waits for rule overrides.
const DefaultLoadTimeout = 5 * time.Second

// OverrideSource supplies user rule overrides. A source with no overrides
// returns an empty set or nil.
type OverrideSource interface {
	LoadOverrides(ctx context.Context) (*model.RuleSet, error)
}

// Result collects the output of every evaluator. A failed evaluator
// contributes an empty list and an entry in Errors.
type Result struct {
	RePurchase []model.Suggestion   `json:"re_purchase"`
	Category   []model.Suggestion   `json:"category"`
	Healthier  []model.Suggestion   `json:"healthier"`
	Expiry     []model.ExpiryNotice `json:"expiry"`
	Errors     []error              `json:"-"`
}

// Suggestions returns the re-purchase, category and healthier suggestions
// in that order.
func (r Result) Suggestions() []model.Suggestion {
	out := make([]model.Suggestion, 0, len(r.RePurchase)+len(r.Category)+len(r.Healthier))
	out = append(out, r.RePurchase...)
	out = append(out, r.Category...)
	return append(out, r.Healthier...)
}

// EvaluatorError records an evaluator that failed during a run.
type EvaluatorError struct {
	Evaluator string
	Err       error
}

func (e *EvaluatorError) Error() string {
	return fmt.Sprintf("%s evaluator: %v", e.Evaluator, e.Err)
}

func (e *EvaluatorError) Unwrap() error {
	return e.Err
}

// Evaluator names used in EvaluatorError and logs.
const (
	EvaluatorRePurchase = "re-purchase"
	EvaluatorCategory   = "category"
	EvaluatorHealthier  = "healthier"
	EvaluatorExpiry     = "expiry"
)

// AllSuggestions resolves the tables from overrides and runs all four
// evaluators against the same inputs and instant.
func AllSuggestions(history []model.PurchaseHistoryItem, list []model.GroceryItem, overrides *model.RuleSet, now time.Time) Result {
	return Evaluate(history, list, Resolve(overrides), now)
}

// Evaluate runs all four evaluators against resolved tables. A panic in one
// evaluator is recovered and reported without affecting the others.
func Evaluate(history []model.PurchaseHistoryItem, list []model.GroceryItem, t *Tables, now time.Time) Result {
	var res Result
	res.RePurchase = run(&res, EvaluatorRePurchase, func() []model.Suggestion {
		return EvaluateRePurchase(history, list, t, now)
	})
	res.Category = run(&res, EvaluatorCategory, func() []model.Suggestion {
		return EvaluateCategory(list, t)
	})
	res.Healthier = run(&res, EvaluatorHealthier, func() []model.Suggestion {
		return EvaluateHealthier(list, t)
	})
	res.Expiry = run(&res, EvaluatorExpiry, func() []model.ExpiryNotice {
		return EvaluateExpiry(history, t, now)
	})
	return res
}

func run[T any](res *Result, name string, fn func() []T) (out []T) {
	defer func() {
		if r := recover(); r != nil {
			res.Errors = append(res.Errors, &EvaluatorError{Evaluator: name, Err: fmt.Errorf("panic: %v", r)})
			out = []T{}
		}
	}()
	out = fn()
	if out == nil {
		out = []T{}
	}
	return out
}

// Engine evaluates suggestions against the current rule overrides and clock.
type Engine struct {
	source      OverrideSource
	clock       clock.Clock
	logger      *slog.Logger
	loadTimeout time.Duration
}

// NewEngine creates an engine. A nil source means defaults only; a nil
// clock uses the system clock.
func NewEngine(source OverrideSource, clk clock.Clock, logger *slog.Logger) *Engine {
	if clk == nil {
		clk = clock.Real{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		source:      source,
		clock:       clk,
		logger:      logger,
		loadTimeout: DefaultLoadTimeout,
	}
}

// Now returns the engine's current time.
func (e *Engine) Now() time.Time {
	return e.clock.Now()
}

// Tables loads overrides from the source and resolves them against the
// defaults. When the source fails, whatever it did return is still applied;
// with nothing returned the defaults are used.
func (e *Engine) Tables(ctx context.Context) *Tables {
	if e.source == nil {
		return Defaults()
	}

	ctx, cancel := context.WithTimeout(ctx, e.loadTimeout)
	defer cancel()

	overrides, err := e.source.LoadOverrides(ctx)
	if err != nil {
		if overrides.Empty() {
			e.logger.Warn("rule overrides unavailable, using defaults", "error", err)
			return Defaults()
		}
		e.logger.Warn("some rule overrides unavailable", "error", err)
	}
	// Resolve(empty) equals Defaults(); this only skips the merge.
	if overrides.Empty() {
		return Defaults()
	}
	return Resolve(overrides)
}

// Suggest runs every evaluator for the given history and list.
func (e *Engine) Suggest(ctx context.Context, history []model.PurchaseHistoryItem, list []model.GroceryItem) Result {
	res := Evaluate(history, list, e.Tables(ctx), e.Now())
	for _, err := range res.Errors {
		e.logger.Error("evaluator failed", "error", err)
	}
	e.logger.Debug("suggestions evaluated",
		"history", len(history),
		"list", len(list),
		"re_purchase", len(res.RePurchase),
		"category", len(res.Category),
		"healthier", len(res.Healthier),
		"expiry", len(res.Expiry),
	)
	return res
}
