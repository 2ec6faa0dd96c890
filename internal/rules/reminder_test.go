package rules

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dukerupert/smartshopper/internal/model"
)

func TestEvaluateExpiry(t *testing.T) {
	now := day(t, "2024-01-10")

	expiring := func(name string, days int) model.PurchaseHistoryItem {
		p := purchase(t, name, "2024-01-01")
		p.ExpiryDate = timePtr(now.AddDate(0, 0, days))
		return p
	}

	tests := []struct {
		name    string
		history []model.PurchaseHistoryItem
		want    []model.ExpiryNotice
	}{
		{
			name:    "two days left",
			history: []model.PurchaseHistoryItem{expiring("Milk", 2)},
			want: []model.ExpiryNotice{
				{Item: "Milk", DaysUntilExpiry: 2, Message: "Milk will expire in 2 days.", Severity: model.SeverityWarning},
			},
		},
		{
			name:    "one day left",
			history: []model.PurchaseHistoryItem{expiring("eggs", 1)},
			want: []model.ExpiryNotice{
				{Item: "eggs", DaysUntilExpiry: 1, Message: "eggs will expire in 1 day.", Severity: model.SeverityWarning},
			},
		},
		{
			name:    "three days left",
			history: []model.PurchaseHistoryItem{expiring("cheese", 3)},
			want: []model.ExpiryNotice{
				{Item: "cheese", DaysUntilExpiry: 3, Message: "cheese will expire in 3 days.", Severity: model.SeverityWarning},
			},
		},
		{
			name:    "expires today",
			history: []model.PurchaseHistoryItem{expiring("bread", 0)},
			want: []model.ExpiryNotice{
				{Item: "bread", DaysUntilExpiry: 0, Message: "bread has expired. Consider replacing it.", Severity: model.SeverityCritical},
			},
		},
		{
			name:    "already expired",
			history: []model.PurchaseHistoryItem{expiring("yogurt", -4)},
			want: []model.ExpiryNotice{
				{Item: "yogurt", DaysUntilExpiry: -4, Message: "yogurt has expired. Consider replacing it.", Severity: model.SeverityCritical},
			},
		},
		{
			name:    "still fresh",
			history: []model.PurchaseHistoryItem{expiring("milk", 4)},
		},
		{
			name: "fresh purchase suppresses older one",
			history: []model.PurchaseHistoryItem{
				expiring("milk", -1),
				expiring("Milk", 6),
			},
		},
		{
			name: "most urgent record reported",
			history: []model.PurchaseHistoryItem{
				expiring("milk", 2),
				expiring("milk", -1),
				expiring("milk", 1),
			},
			want: []model.ExpiryNotice{
				{Item: "milk", DaysUntilExpiry: -1, Message: "milk has expired. Consider replacing it.", Severity: model.SeverityCritical},
			},
		},
		{
			name: "consumed and deleted ignored",
			history: func() []model.PurchaseHistoryItem {
				a := expiring("milk", 1)
				a.Consumed = true
				b := expiring("bread", 1)
				b.Deleted = true
				return []model.PurchaseHistoryItem{a, b}
			}(),
		},
		{
			name: "table shelf life",
			history: []model.PurchaseHistoryItem{
				purchase(t, "milk", "2024-01-05"),
				purchase(t, "rice", "2024-01-01"),
			},
			want: []model.ExpiryNotice{
				{Item: "milk", DaysUntilExpiry: 2, Message: "milk will expire in 2 days.", Severity: model.SeverityWarning},
			},
		},
		{
			name: "invalid records skipped",
			history: []model.PurchaseHistoryItem{
				{ItemName: "milk", Invalid: true, PurchaseDate: day(t, "2024-01-01")},
				expiring("eggs", 1),
			},
			want: []model.ExpiryNotice{
				{Item: "eggs", DaysUntilExpiry: 1, Message: "eggs will expire in 1 day.", Severity: model.SeverityWarning},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateExpiry(tt.history, Defaults(), now)
			if got == nil {
				t.Fatal("got nil, want empty slice")
			}
			if diff := cmp.Diff(tt.want, got, cmpEmpty); diff != "" {
				t.Errorf("notices mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
