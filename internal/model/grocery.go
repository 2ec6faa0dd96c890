package model

import (
	"encoding/json"
	"strings"
	"time"
)

// GroceryItem is an entry on the household's current shopping list.
// Names are unique within the list after lowercasing and trimming.
type GroceryItem struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Quantity   *float64   `json:"quantity,omitempty"`
	Unit       string     `json:"unit,omitempty"`
	Category   string     `json:"category,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	AddedDate  time.Time  `json:"added_date"`

	// Invalid is set when a date field could not be parsed while decoding.
	Invalid bool `json:"-"`
}

// Key returns the normalized name used for case-insensitive matching.
func (g GroceryItem) Key() string {
	return NameKey(g.Name)
}

func (g *GroceryItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         string   `json:"id"`
		Name       string   `json:"name"`
		Quantity   *float64 `json:"quantity"`
		Unit       string   `json:"unit"`
		Category   string   `json:"category"`
		ExpiryDate string   `json:"expiry_date"`
		AddedDate  string   `json:"added_date"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*g = GroceryItem{
		ID:       raw.ID,
		Name:     raw.Name,
		Quantity: raw.Quantity,
		Unit:     raw.Unit,
		Category: raw.Category,
	}
	if raw.ExpiryDate != "" {
		t, err := ParseDate(raw.ExpiryDate)
		if err != nil {
			g.Invalid = true
		} else {
			g.ExpiryDate = &t
		}
	}
	if raw.AddedDate != "" {
		t, err := ParseDate(raw.AddedDate)
		if err != nil {
			g.Invalid = true
		} else {
			g.AddedDate = t
		}
	}
	return nil
}

// PurchaseHistoryItem records one purchase of an item.
type PurchaseHistoryItem struct {
	ID               string     `json:"id"`
	ItemName         string     `json:"item_name"`
	PurchaseDate     time.Time  `json:"purchase_date"`
	ExpiryTimeInDays *int       `json:"expiry_time_in_days,omitempty"`
	ExpiryDate       *time.Time `json:"expiry_date,omitempty"`
	Quantity         *float64   `json:"quantity,omitempty"`
	Cost             *float64   `json:"cost,omitempty"`
	Deleted          bool       `json:"deleted"`
	Consumed         bool       `json:"consumed"`

	// Invalid is set when a date field could not be parsed while decoding.
	Invalid bool `json:"-"`
}

// Key returns the normalized item name used for case-insensitive matching.
func (p PurchaseHistoryItem) Key() string {
	return NameKey(p.ItemName)
}

// Active reports whether the record still participates in suggestions.
func (p PurchaseHistoryItem) Active() bool {
	return !p.Deleted && !p.Consumed
}

func (p *PurchaseHistoryItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID               string   `json:"id"`
		ItemName         string   `json:"item_name"`
		PurchaseDate     string   `json:"purchase_date"`
		ExpiryTimeInDays *int     `json:"expiry_time_in_days"`
		ExpiryDate       string   `json:"expiry_date"`
		Quantity         *float64 `json:"quantity"`
		Cost             *float64 `json:"cost"`
		Deleted          bool     `json:"deleted"`
		IsDeleted        bool     `json:"is_deleted"`
		Consumed         bool     `json:"consumed"`
		IsConsumed       bool     `json:"is_consumed"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = PurchaseHistoryItem{
		ID:               raw.ID,
		ItemName:         raw.ItemName,
		ExpiryTimeInDays: raw.ExpiryTimeInDays,
		Quantity:         raw.Quantity,
		Cost:             raw.Cost,
		Deleted:          raw.Deleted || raw.IsDeleted,
		Consumed:         raw.Consumed || raw.IsConsumed,
	}
	if raw.PurchaseDate != "" {
		t, err := ParseDate(raw.PurchaseDate)
		if err != nil {
			p.Invalid = true
		} else {
			p.PurchaseDate = t
		}
	}
	if raw.ExpiryDate != "" {
		t, err := ParseDate(raw.ExpiryDate)
		if err != nil {
			p.Invalid = true
		} else {
			p.ExpiryDate = &t
		}
	}
	return nil
}

// NameKey lowercases and trims an item name.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ParseDate accepts RFC 3339 timestamps and plain YYYY-MM-DD dates.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
