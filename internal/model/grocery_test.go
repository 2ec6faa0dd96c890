package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2024-01-04", time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), false},
		{" 2024-01-04 ", time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), false},
		{"2024-01-04T10:00:00", time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC), false},
		{"2024-01-04T10:00:00Z", time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC), false},
		{"2024-01-04T10:00:00+02:00", time.Date(2024, 1, 4, 8, 0, 0, 0, time.UTC), false},
		{"04/01/2024", time.Time{}, true},
		{"", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseDate(%q) = %v, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPurchaseHistoryItemUnmarshal(t *testing.T) {
	jan4 := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
	jan4Morning := time.Date(2024, 1, 4, 10, 0, 0, 0, time.UTC)
	jan9 := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	five := 5

	tests := []struct {
		name string
		in   string
		want PurchaseHistoryItem
	}{
		{
			name: "current field names",
			in:   `{"id":"h1","item_name":"Milk","purchase_date":"2024-01-04","expiry_time_in_days":5,"deleted":true,"consumed":false}`,
			want: PurchaseHistoryItem{ID: "h1", ItemName: "Milk", PurchaseDate: jan4, ExpiryTimeInDays: &five, Deleted: true},
		},
		{
			name: "legacy flags and local timestamp",
			in:   `{"item_name":"Milk","is_deleted":true,"is_consumed":true,"purchase_date":"2024-01-04T10:00:00"}`,
			want: PurchaseHistoryItem{ItemName: "Milk", PurchaseDate: jan4Morning, Deleted: true, Consumed: true},
		},
		{
			name: "either flag spelling sets the field",
			in:   `{"item_name":"Eggs","deleted":false,"is_consumed":true,"purchase_date":"2024-01-04","expiry_date":"2024-01-09"}`,
			want: PurchaseHistoryItem{ItemName: "Eggs", PurchaseDate: jan4, ExpiryDate: &jan9, Consumed: true},
		},
		{
			name: "bad purchase date",
			in:   `{"item_name":"Milk","purchase_date":"yesterday"}`,
			want: PurchaseHistoryItem{ItemName: "Milk", Invalid: true},
		},
		{
			name: "bad expiry date keeps purchase date",
			in:   `{"item_name":"Milk","purchase_date":"2024-01-04","expiry_date":"soon"}`,
			want: PurchaseHistoryItem{ItemName: "Milk", PurchaseDate: jan4, Invalid: true},
		},
		{
			name: "missing dates are not invalid",
			in:   `{"item_name":"Milk"}`,
			want: PurchaseHistoryItem{ItemName: "Milk"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got PurchaseHistoryItem
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("item mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGroceryItemUnmarshal(t *testing.T) {
	jan4 := time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC)
	jan9 := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	two := 2.0

	tests := []struct {
		name string
		in   string
		want GroceryItem
	}{
		{
			name: "all fields",
			in:   `{"id":"g1","name":"Milk","quantity":2,"unit":"l","category":"Dairy","expiry_date":"2024-01-09","added_date":"2024-01-04"}`,
			want: GroceryItem{ID: "g1", Name: "Milk", Quantity: &two, Unit: "l", Category: "Dairy", ExpiryDate: &jan9, AddedDate: jan4},
		},
		{
			name: "bad expiry date",
			in:   `{"name":"Milk","expiry_date":"next week","added_date":"2024-01-04"}`,
			want: GroceryItem{Name: "Milk", AddedDate: jan4, Invalid: true},
		},
		{
			name: "bad added date",
			in:   `{"name":"Milk","added_date":"01-04-2024"}`,
			want: GroceryItem{Name: "Milk", Invalid: true},
		},
		{
			name: "name only",
			in:   `{"name":"Milk"}`,
			want: GroceryItem{Name: "Milk"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got GroceryItem
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("item mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnmarshalRejectsMalformedJSON(t *testing.T) {
	var g GroceryItem
	if err := json.Unmarshal([]byte(`{"name":`), &g); err == nil {
		t.Error("grocery item: expected error")
	}
	var p PurchaseHistoryItem
	if err := json.Unmarshal([]byte(`{"item_name":3}`), &p); err == nil {
		t.Error("history item: expected error")
	}
}

func TestKeysAndActive(t *testing.T) {
	if got := (GroceryItem{Name: "  Whole Milk "}).Key(); got != "whole milk" {
		t.Errorf("GroceryItem.Key() = %q", got)
	}
	p := PurchaseHistoryItem{ItemName: "EGGS"}
	if p.Key() != "eggs" || !p.Active() {
		t.Errorf("key = %q, active = %v", p.Key(), p.Active())
	}
	p.Consumed = true
	if p.Active() {
		t.Error("consumed item should not be active")
	}
}
