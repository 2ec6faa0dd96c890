// Command suggest evaluates a grocery snapshot against the rule engine
// without a database.
//
// Usage:
//
//	suggest [-rules pack.yaml] [-now 2024-01-10] [-json] [snapshot.json]
//
// The snapshot is read from stdin when no file is given and looks like
// {"history": [...], "list": [...]}.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dukerupert/smartshopper/internal/clock"
	"github.com/dukerupert/smartshopper/internal/logging"
	"github.com/dukerupert/smartshopper/internal/model"
	"github.com/dukerupert/smartshopper/internal/rulepack"
	"github.com/dukerupert/smartshopper/internal/rules"
)

type snapshot struct {
	History []model.PurchaseHistoryItem `json:"history"`
	List    []model.GroceryItem         `json:"list"`
}

type report struct {
	RePurchase []model.Suggestion   `json:"re_purchase"`
	Category   []model.Suggestion   `json:"category"`
	Healthier  []model.Suggestion   `json:"healthier"`
	Expiry     []model.ExpiryNotice `json:"expiry"`
	Errors     []string             `json:"errors,omitempty"`
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "suggest:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("suggest", flag.ContinueOnError)
	rulesPath := fs.String("rules", "", "JSON or YAML rule pack applied over the defaults")
	nowFlag := fs.String("now", "", "evaluate as of this date (YYYY-MM-DD or RFC 3339)")
	asJSON := fs.Bool("json", false, "print JSON instead of text")
	logLevel := fs.String("log-level", "warn", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("expected at most one snapshot file, got %d", fs.NArg())
	}

	logger := logging.New(os.Stderr, *logLevel, "text")

	var clk clock.Clock = clock.Real{}
	if *nowFlag != "" {
		t, err := model.ParseDate(*nowFlag)
		if err != nil {
			return fmt.Errorf("parse -now: %w", err)
		}
		clk = clock.Fixed{T: t}
	}

	var source rules.OverrideSource
	if *rulesPath != "" {
		rs, err := rulepack.Load(*rulesPath)
		if err != nil {
			return err
		}
		if err := rulepack.Validate(rs); err != nil {
			logger.Warn("rule pack has entries that will be skipped", "path", *rulesPath, "error", err)
		}
		source = rulepack.FileSource{Path: *rulesPath}
	}

	in := stdin
	if fs.NArg() == 1 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("open snapshot: %w", err)
		}
		defer f.Close()
		in = f
	}

	var snap snapshot
	if err := json.NewDecoder(in).Decode(&snap); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	history, list := clean(snap, logger)

	engine := rules.NewEngine(source, clk, logger)
	res := engine.Suggest(context.Background(), history, list)

	out := report{
		RePurchase: res.RePurchase,
		Category:   res.Category,
		Healthier:  res.Healthier,
		Expiry:     res.Expiry,
	}
	for _, err := range res.Errors {
		out.Errors = append(out.Errors, err.Error())
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	printReport(stdout, out)
	return nil
}

// clean drops records with unparseable dates or empty names.
func clean(snap snapshot, logger *slog.Logger) ([]model.PurchaseHistoryItem, []model.GroceryItem) {
	history := make([]model.PurchaseHistoryItem, 0, len(snap.History))
	for i, h := range snap.History {
		if h.Invalid || h.Key() == "" || h.PurchaseDate.IsZero() {
			logger.Warn("skipping history record", "index", i, "item_name", h.ItemName)
			continue
		}
		history = append(history, h)
	}
	list := make([]model.GroceryItem, 0, len(snap.List))
	for i, g := range snap.List {
		if g.Invalid || g.Key() == "" {
			logger.Warn("skipping list item", "index", i, "name", g.Name)
			continue
		}
		list = append(list, g)
	}
	return history, list
}

func printReport(w io.Writer, r report) {
	section := func(title string, suggestions []model.Suggestion) {
		fmt.Fprintf(w, "%s (%d)\n", title, len(suggestions))
		for _, s := range suggestions {
			fmt.Fprintf(w, "  - %s: %s\n", s.Item, s.Reason)
		}
		fmt.Fprintln(w)
	}
	section("Re-purchase", r.RePurchase)
	section("Category", r.Category)
	section("Healthier", r.Healthier)

	fmt.Fprintf(w, "Expiry (%d)\n", len(r.Expiry))
	for _, n := range r.Expiry {
		fmt.Fprintf(w, "  - [%s] %s\n", n.Severity, n.Message)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Errors")
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  - %s\n", e)
		}
	}
}
