package rules

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dukerupert/smartshopper/internal/model"
)

func TestEvaluateRePurchase(t *testing.T) {
	now := day(t, "2024-01-10")

	consumed := func(p model.PurchaseHistoryItem) model.PurchaseHistoryItem {
		p.Consumed = true
		return p
	}
	deleted := func(p model.PurchaseHistoryItem) model.PurchaseHistoryItem {
		p.Deleted = true
		return p
	}

	tests := []struct {
		name    string
		history []model.PurchaseHistoryItem
		list    []model.GroceryItem
		want    []string
	}{
		{
			name:    "short shelf life bought six days ago",
			history: []model.PurchaseHistoryItem{purchase(t, "Milk", "2024-01-04")},
			want:    []string{"Milk"},
		},
		{
			name:    "bought four days ago",
			history: []model.PurchaseHistoryItem{purchase(t, "milk", "2024-01-06")},
		},
		{
			name:    "bought eight days ago",
			history: []model.PurchaseHistoryItem{purchase(t, "milk", "2024-01-02")},
		},
		{
			name:    "long shelf life bought once",
			history: []model.PurchaseHistoryItem{purchase(t, "rice", "2024-01-04")},
		},
		{
			name: "explicit long expiry is not running out",
			history: []model.PurchaseHistoryItem{{
				ItemName:         "milk",
				PurchaseDate:     day(t, "2024-01-04"),
				ExpiryTimeInDays: intPtr(20),
			}},
		},
		{
			name: "frequently bought",
			history: []model.PurchaseHistoryItem{
				purchase(t, "rice", "2023-12-20"),
				purchase(t, "rice", "2023-12-28"),
				purchase(t, "Rice", "2024-01-04"),
			},
			want: []string{"Rice"},
		},
		{
			name: "frequent but not recent",
			history: []model.PurchaseHistoryItem{
				purchase(t, "rice", "2023-12-01"),
				purchase(t, "rice", "2023-12-10"),
				purchase(t, "rice", "2023-12-20"),
			},
		},
		{
			name: "two purchases are not frequent",
			history: []model.PurchaseHistoryItem{
				purchase(t, "rice", "2024-01-01"),
				purchase(t, "rice", "2024-01-08"),
			},
		},
		{
			name: "consumed purchases count toward frequency",
			history: []model.PurchaseHistoryItem{
				consumed(purchase(t, "apples", "2023-12-30")),
				consumed(purchase(t, "apples", "2024-01-02")),
				purchase(t, "apples", "2024-01-05"),
			},
			want: []string{"apples"},
		},
		{
			name: "deleted purchases do not count",
			history: []model.PurchaseHistoryItem{
				deleted(purchase(t, "apples", "2023-12-30")),
				deleted(purchase(t, "apples", "2024-01-02")),
				purchase(t, "apples", "2024-01-05"),
			},
		},
		{
			name: "all consumed",
			history: []model.PurchaseHistoryItem{
				consumed(purchase(t, "milk", "2024-01-04")),
				consumed(purchase(t, "milk", "2024-01-03")),
				consumed(purchase(t, "milk", "2024-01-02")),
			},
		},
		{
			name:    "deleted record",
			history: []model.PurchaseHistoryItem{deleted(purchase(t, "milk", "2024-01-04"))},
		},
		{
			name:    "already on list",
			history: []model.PurchaseHistoryItem{purchase(t, "bread", "2024-01-05")},
			list:    groceryList(" Bread "),
		},
		{
			name: "one suggestion per item",
			history: []model.PurchaseHistoryItem{
				purchase(t, "milk", "2023-12-28"),
				purchase(t, "milk", "2024-01-01"),
				purchase(t, "milk", "2024-01-04"),
			},
			want: []string{"milk"},
		},
		{
			name: "first appearance order",
			history: []model.PurchaseHistoryItem{
				purchase(t, "yogurt", "2024-01-05"),
				purchase(t, "milk", "2024-01-04"),
				purchase(t, "Yogurt", "2024-01-03"),
			},
			want: []string{"yogurt", "milk"},
		},
		{
			name: "invalid records skipped",
			history: []model.PurchaseHistoryItem{
				{ItemName: "", PurchaseDate: day(t, "2024-01-04")},
				{ItemName: "milk"},
				purchase(t, "bread", "2024-01-05"),
			},
			want: []string{"bread"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateRePurchase(tt.history, tt.list, Defaults(), now)
			if got == nil {
				t.Fatal("got nil, want empty slice")
			}
			if diff := cmp.Diff(tt.want, items(got), cmpEmpty); diff != "" {
				t.Errorf("items mismatch (-want +got):\n%s", diff)
			}
			for _, s := range got {
				if s.Type != model.SuggestionRePurchase {
					t.Errorf("type = %q, want %q", s.Type, model.SuggestionRePurchase)
				}
			}
		})
	}
}

func TestRePurchaseReasons(t *testing.T) {
	now := day(t, "2024-01-10")
	history := []model.PurchaseHistoryItem{
		purchase(t, "Milk", "2024-01-04"),
		purchase(t, "rice", "2023-12-20"),
		purchase(t, "rice", "2023-12-28"),
		purchase(t, "rice", "2024-01-04"),
	}

	got := EvaluateRePurchase(history, nil, Defaults(), now)
	if len(got) != 2 {
		t.Fatalf("got %d suggestions, want 2", len(got))
	}
	if want := "You bought Milk 6 days ago"; !strings.HasPrefix(got[0].Reason, want) {
		t.Errorf("reason = %q, want prefix %q", got[0].Reason, want)
	}
	if want := "You frequently buy rice (3 purchases)"; !strings.HasPrefix(got[1].Reason, want) {
		t.Errorf("reason = %q, want prefix %q", got[1].Reason, want)
	}
}

func TestPurchaseWindow(t *testing.T) {
	withDays := purchase(t, "rice", "2024-01-04")
	withDays.ExpiryTimeInDays = intPtr(3)
	withDate := purchase(t, "rice", "2024-01-04")
	withDate.ExpiryDate = timePtr(day(t, "2024-01-20"))
	invalid := purchase(t, "rice", "2024-01-04")
	invalid.Invalid = true

	tests := []struct {
		name string
		item model.PurchaseHistoryItem
		want int
	}{
		{"table shelf life", purchase(t, "Milk", "2024-01-04"), 7},
		{"long shelf life", purchase(t, "rice", "2024-01-04"), 365},
		{"explicit days", withDays, 3},
		{"explicit date", withDate, 16},
		{"invalid falls back", invalid, DefaultShelfLifeDays},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := purchaseWindow(tt.item, Defaults()); got != tt.want {
				t.Errorf("purchaseWindow() = %d, want %d", got, tt.want)
			}
		})
	}
}
