package model

// HealthierAlternative maps an unhealthy item to a healthier swap.
type HealthierAlternative struct {
	ID                 string `json:"id,omitempty" yaml:"id,omitempty"`
	UnhealthyItem      string `json:"unhealthy_item" yaml:"unhealthy_item"`
	HealthyAlternative string `json:"healthy_alternative" yaml:"healthy_alternative"`
	Category           string `json:"category,omitempty" yaml:"category,omitempty"`
}

// CategoryAssociation lists items commonly bought together with PrimaryItem.
// SuggestedItems is an ordered set.
type CategoryAssociation struct {
	ID             string   `json:"id,omitempty" yaml:"id,omitempty"`
	PrimaryItem    string   `json:"primary_item" yaml:"primary_item"`
	SuggestedItems []string `json:"suggested_items" yaml:"suggested_items"`
	Category       string   `json:"category,omitempty" yaml:"category,omitempty"`
}

// DefaultExpiryRule gives the typical shelf life of an item in days.
type DefaultExpiryRule struct {
	ID                string `json:"id,omitempty" yaml:"id,omitempty"`
	ItemName          string `json:"item_name" yaml:"item_name"`
	Category          string `json:"category,omitempty" yaml:"category,omitempty"`
	DefaultExpiryDays int    `json:"default_expiry_days" yaml:"default_expiry_days"`
}

// RuleSet is a collection of rule entries of all three kinds. It is the
// shape of both user overrides and exported rule packs.
type RuleSet struct {
	HealthierAlternatives []HealthierAlternative `json:"healthier_alternatives" yaml:"healthier_alternatives"`
	CategoryAssociations  []CategoryAssociation  `json:"category_associations" yaml:"category_associations"`
	DefaultExpiryRules    []DefaultExpiryRule    `json:"default_expiry_rules" yaml:"default_expiry_rules"`
}

// Empty reports whether the set has no entries.
func (rs *RuleSet) Empty() bool {
	return rs == nil || len(rs.HealthierAlternatives)+len(rs.CategoryAssociations)+len(rs.DefaultExpiryRules) == 0
}
