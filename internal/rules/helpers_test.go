package rules

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/dukerupert/smartshopper/internal/model"
)

var cmpEmpty = cmpopts.EquateEmpty()

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func intPtr(n int) *int {
	return &n
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func purchase(t *testing.T, name, date string) model.PurchaseHistoryItem {
	t.Helper()
	return model.PurchaseHistoryItem{
		ID:           name + "-" + date,
		ItemName:     name,
		PurchaseDate: day(t, date),
	}
}

func groceryList(names ...string) []model.GroceryItem {
	list := make([]model.GroceryItem, len(names))
	for i, n := range names {
		list[i] = model.GroceryItem{ID: n, Name: n}
	}
	return list
}

func items(suggestions []model.Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Item
	}
	return out
}
