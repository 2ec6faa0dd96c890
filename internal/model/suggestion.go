package model

type SuggestionType string

const (
	SuggestionRePurchase SuggestionType = "re-purchase"
	SuggestionCategory   SuggestionType = "category"
	SuggestionHealthier  SuggestionType = "healthier"
)

// Suggestion recommends adding or swapping an item. Reason names both the
// triggering item and the suggested item.
type Suggestion struct {
	Item   string         `json:"item"`
	Reason string         `json:"reason"`
	Type   SuggestionType `json:"type"`
}

type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// ExpiryNotice warns about an item that is expiring or already expired.
type ExpiryNotice struct {
	Item            string   `json:"item"`
	DaysUntilExpiry int      `json:"days_until_expiry"`
	Message         string   `json:"message"`
	Severity        Severity `json:"severity"`
}
