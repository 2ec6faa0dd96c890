package rules

import (
	"errors"
	"math"
	"time"

	"github.com/dukerupert/smartshopper/internal/model"
)

// DefaultShelfLifeDays is used when an item has no explicit expiry and no
// table entry matches its name.
const DefaultShelfLifeDays = 7

// ErrInvalidItem is returned for records the engine cannot evaluate: an
// empty name, a missing purchase date, or a date that failed to parse.
var ErrInvalidItem = errors.New("invalid item")

func validateHistoryItem(item model.PurchaseHistoryItem) error {
	switch {
	case item.Invalid:
		return ErrInvalidItem
	case item.Key() == "":
		return ErrInvalidItem
	case item.PurchaseDate.IsZero():
		return ErrInvalidItem
	}
	return nil
}

// ShelfLifeDays returns the default shelf life for an item name from the
// tables, or DefaultShelfLifeDays when nothing matches.
func (t *Tables) ShelfLifeDays(name string) int {
	if days, ok := t.ExpiryDays(name); ok {
		return days
	}
	return DefaultShelfLifeDays
}

// ExpiryDate resolves the day a purchase expires, at UTC midnight.
// An explicit expiry date wins, then purchase date plus ExpiryTimeInDays,
// then purchase date plus the table shelf life for the item name.
// A negative ExpiryTimeInDays is treated as absent.
func ExpiryDate(item model.PurchaseHistoryItem, t *Tables) (time.Time, error) {
	if err := validateHistoryItem(item); err != nil {
		return time.Time{}, err
	}
	if item.ExpiryDate != nil {
		return startOfDay(*item.ExpiryDate), nil
	}

	days := t.ShelfLifeDays(item.ItemName)
	if item.ExpiryTimeInDays != nil && *item.ExpiryTimeInDays >= 0 {
		days = *item.ExpiryTimeInDays
	}
	return startOfDay(item.PurchaseDate).AddDate(0, 0, days), nil
}

// DaysUntilExpiry returns the signed number of days from now until the
// item expires. Zero means it expires today; negative means it already has.
func DaysUntilExpiry(item model.PurchaseHistoryItem, t *Tables, now time.Time) (int, error) {
	expiry, err := ExpiryDate(item, t)
	if err != nil {
		return 0, err
	}
	return daysBetween(now, expiry), nil
}

// daysBetween counts whole days from one UTC midnight to another, rounding
// half away from zero.
func daysBetween(from, to time.Time) int {
	d := startOfDay(to).Sub(startOfDay(from))
	return int(math.Round(d.Hours() / 24))
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
