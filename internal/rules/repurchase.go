package rules

import (
	"fmt"
	"strings"
	"time"

	"github.com/dukerupert/smartshopper/internal/model"
)

const (
	// An item bought this many days ago with a short shelf life is
	// probably about to run out.
	runningOutMinDays = 5
	runningOutMaxDays = 7
	shortShelfLife    = 7

	frequentPurchases  = 3
	frequentRecentDays = 14
)

type purchaseGroup struct {
	count     int
	latest    model.PurchaseHistoryItem
	hasActive bool
}

// EvaluateRePurchase suggests items from the purchase history that are not
// on the current list. At most one suggestion is made per item name:
// "about to run out" takes priority over "frequently bought".
//
// Deleted records are ignored entirely. Consumed records still count as
// purchases for the frequency rule but are never the record evaluated.
func EvaluateRePurchase(history []model.PurchaseHistoryItem, list []model.GroceryItem, t *Tables, now time.Time) []model.Suggestion {
	onList := listKeys(list)

	groups := make(map[string]*purchaseGroup)
	var order []string
	for _, h := range history {
		if h.Deleted || validateHistoryItem(h) != nil {
			continue
		}
		key := h.Key()
		if onList[key] {
			continue
		}
		g, ok := groups[key]
		if !ok {
			g = &purchaseGroup{}
			groups[key] = g
			order = append(order, key)
		}
		g.count++
		if !h.Active() {
			continue
		}
		if !g.hasActive || h.PurchaseDate.After(g.latest.PurchaseDate) {
			g.latest = h
			g.hasActive = true
		}
	}

	suggestions := []model.Suggestion{}
	for _, key := range order {
		g := groups[key]
		if !g.hasActive {
			continue
		}
		name := strings.TrimSpace(g.latest.ItemName)
		since := daysBetween(g.latest.PurchaseDate, now)

		if since >= runningOutMinDays && since <= runningOutMaxDays && purchaseWindow(g.latest, t) <= shortShelfLife {
			suggestions = append(suggestions, model.Suggestion{
				Item:   name,
				Reason: fmt.Sprintf("You bought %s %d days ago, and it typically runs out within a week. Should I add it again?", name, since),
				Type:   model.SuggestionRePurchase,
			})
			continue
		}

		if g.count >= frequentPurchases && since >= 0 && since <= frequentRecentDays {
			suggestions = append(suggestions, model.Suggestion{
				Item:   name,
				Reason: fmt.Sprintf("You frequently buy %s (%d purchases). Would you like to add it to your list?", name, g.count),
				Type:   model.SuggestionRePurchase,
			})
		}
	}
	return suggestions
}

// purchaseWindow is the number of days between purchase and resolved expiry.
func purchaseWindow(item model.PurchaseHistoryItem, t *Tables) int {
	expiry, err := ExpiryDate(item, t)
	if err != nil {
		return DefaultShelfLifeDays
	}
	return daysBetween(item.PurchaseDate, expiry)
}

// listKeys returns the set of normalized names on the list.
func listKeys(list []model.GroceryItem) map[string]bool {
	keys := make(map[string]bool, len(list))
	for _, item := range list {
		if key := item.Key(); key != "" {
			keys[key] = true
		}
	}
	return keys
}
