package rules

import (
	"fmt"
	"strings"
	"time"

	"github.com/dukerupert/smartshopper/internal/model"
)

// Items expiring within this many days get a notice.
const expiryWarningDays = 3

type expiryGroup struct {
	name   string
	days   int
	urgent bool
	fresh  bool
}

// EvaluateExpiry reports active purchases that expire within three days
// or have already expired. Records are grouped by item name: a name is
// skipped when any of its active records is still fresh, otherwise the
// most urgent record is reported. Invalid records are skipped.
func EvaluateExpiry(history []model.PurchaseHistoryItem, t *Tables, now time.Time) []model.ExpiryNotice {
	groups := make(map[string]*expiryGroup)
	var order []string
	for _, h := range history {
		if !h.Active() {
			continue
		}
		days, err := DaysUntilExpiry(h, t, now)
		if err != nil {
			continue
		}
		key := h.Key()
		g, ok := groups[key]
		if !ok {
			g = &expiryGroup{}
			groups[key] = g
			order = append(order, key)
		}
		if days > expiryWarningDays {
			g.fresh = true
			continue
		}
		if !g.urgent || days < g.days {
			g.name = strings.TrimSpace(h.ItemName)
			g.days = days
			g.urgent = true
		}
	}

	notices := []model.ExpiryNotice{}
	for _, key := range order {
		g := groups[key]
		if g.fresh || !g.urgent {
			continue
		}
		notices = append(notices, expiryNotice(g.name, g.days))
	}
	return notices
}

func expiryNotice(name string, days int) model.ExpiryNotice {
	if days <= 0 {
		return model.ExpiryNotice{
			Item:            name,
			DaysUntilExpiry: days,
			Message:         fmt.Sprintf("%s has expired. Consider replacing it.", name),
			Severity:        model.SeverityCritical,
		}
	}
	unit := "days"
	if days == 1 {
		unit = "day"
	}
	return model.ExpiryNotice{
		Item:            name,
		DaysUntilExpiry: days,
		Message:         fmt.Sprintf("%s will expire in %d %s.", name, days, unit),
		Severity:        model.SeverityWarning,
	}
}
