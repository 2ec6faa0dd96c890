package rules

import (
	"slices"
	"strings"
	"sync"

	"github.com/dukerupert/smartshopper/internal/model"
)

// Tables holds the resolved rule tables consumed by the evaluators. All keys
// are lowercased and trimmed. A Tables value is never modified after it is
// built, so it may be shared between goroutines.
type Tables struct {
	healthier    map[string]string
	associations map[string][]string
	expiryDays   map[string]int
	aisles       map[string]string

	// Keys ordered longest first, then alphabetically, so that substring
	// and fuzzy matching pick the most specific entry deterministically.
	healthierKeys []string
	expiryKeys    []string

	// Lowercased healthy alternatives, used to avoid swapping an item that
	// is already the healthier choice.
	healthyChoices map[string]bool
}

func newTables() *Tables {
	return &Tables{
		healthier:    make(map[string]string, len(defaultHealthier)),
		associations: make(map[string][]string, len(defaultAssociations)),
		expiryDays:   make(map[string]int, len(defaultShelfLife)),
		aisles:       make(map[string]string, len(defaultShelfLife)),
	}
}

// Resolve builds tables from the built-in reference tables with overrides
// applied on top. Override entries replace defaults with the same
// lowercased, trimmed key; category associations are replaced, never
// appended to. Invalid override entries are skipped. A nil overrides value
// yields the defaults.
func Resolve(overrides *model.RuleSet) *Tables {
	t := newTables()
	for k, v := range defaultHealthier {
		t.healthier[k] = v
	}
	for k, v := range defaultAssociations {
		t.associations[k] = slices.Clone(v)
	}
	for k, v := range defaultShelfLife {
		t.expiryDays[k] = v.days
		t.aisles[k] = v.aisle
	}
	t.apply(overrides)
	t.index()
	return t
}

// Build creates tables containing only the entries in rs.
func Build(rs *model.RuleSet) *Tables {
	t := newTables()
	t.apply(rs)
	t.index()
	return t
}

var defaultTables = sync.OnceValue(func() *Tables { return Resolve(nil) })

// Defaults returns the shared, immutable reference tables.
func Defaults() *Tables {
	return defaultTables()
}

// DefaultRules returns the reference tables as a rule set, sorted by key.
func DefaultRules() *model.RuleSet {
	return Defaults().RuleSet()
}

func (t *Tables) apply(rs *model.RuleSet) {
	if rs == nil {
		return
	}
	for _, r := range rs.HealthierAlternatives {
		key := model.NameKey(r.UnhealthyItem)
		alt := strings.TrimSpace(r.HealthyAlternative)
		if key == "" || alt == "" {
			continue
		}
		t.healthier[key] = alt
	}
	for _, r := range rs.CategoryAssociations {
		key := model.NameKey(r.PrimaryItem)
		if key == "" || r.SuggestedItems == nil {
			continue
		}
		t.associations[key] = normalizeItems(r.SuggestedItems)
	}
	for _, r := range rs.DefaultExpiryRules {
		key := model.NameKey(r.ItemName)
		if key == "" || r.DefaultExpiryDays <= 0 {
			continue
		}
		t.expiryDays[key] = r.DefaultExpiryDays
		if aisle := strings.TrimSpace(r.Category); aisle != "" {
			t.aisles[key] = aisle
		}
	}
}

// normalizeItems trims entries, drops blanks and removes case-insensitive
// duplicates while keeping the first occurrence.
func normalizeItems(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		key := strings.ToLower(item)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

func (t *Tables) index() {
	t.healthierKeys = sortedKeys(t.healthier)
	t.expiryKeys = sortedKeys(t.expiryDays)
	t.healthyChoices = make(map[string]bool, len(t.healthier))
	for _, alt := range t.healthier {
		t.healthyChoices[model.NameKey(alt)] = true
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if len(a) != len(b) {
			return len(b) - len(a)
		}
		return strings.Compare(a, b)
	})
	return keys
}

// Alternative returns the healthier alternative for an exact item name.
func (t *Tables) Alternative(name string) (string, bool) {
	alt, ok := t.healthier[model.NameKey(name)]
	return alt, ok
}

// Associations returns a copy of the items associated with name.
func (t *Tables) Associations(name string) []string {
	return slices.Clone(t.associations[model.NameKey(name)])
}

// ExpiryDays returns the default shelf life for name. An exact key wins;
// otherwise the longest table key contained in name is used.
func (t *Tables) ExpiryDays(name string) (int, bool) {
	key, ok := t.expiryKey(name)
	if !ok {
		return 0, false
	}
	return t.expiryDays[key], true
}

// Aisle returns the store aisle for name using the same matching as
// ExpiryDays.
func (t *Tables) Aisle(name string) (string, bool) {
	key, ok := t.expiryKey(name)
	if !ok {
		return "", false
	}
	aisle, ok := t.aisles[key]
	return aisle, ok
}

func (t *Tables) expiryKey(name string) (string, bool) {
	name = model.NameKey(name)
	if name == "" {
		return "", false
	}
	if _, ok := t.expiryDays[name]; ok {
		return name, true
	}
	for _, key := range t.expiryKeys {
		if strings.Contains(name, key) {
			return key, true
		}
	}
	return "", false
}

// Len returns the number of entries in each table.
func (t *Tables) Len() (healthier, associations, expiry int) {
	return len(t.healthier), len(t.associations), len(t.expiryDays)
}

// RuleSet returns the tables as a rule set sorted by key.
func (t *Tables) RuleSet() *model.RuleSet {
	rs := &model.RuleSet{
		HealthierAlternatives: make([]model.HealthierAlternative, 0, len(t.healthier)),
		CategoryAssociations:  make([]model.CategoryAssociation, 0, len(t.associations)),
		DefaultExpiryRules:    make([]model.DefaultExpiryRule, 0, len(t.expiryDays)),
	}
	for _, k := range alphabetical(t.healthier) {
		rs.HealthierAlternatives = append(rs.HealthierAlternatives, model.HealthierAlternative{
			UnhealthyItem:      k,
			HealthyAlternative: t.healthier[k],
		})
	}
	for _, k := range alphabetical(t.associations) {
		rs.CategoryAssociations = append(rs.CategoryAssociations, model.CategoryAssociation{
			PrimaryItem:    k,
			SuggestedItems: slices.Clone(t.associations[k]),
		})
	}
	for _, k := range alphabetical(t.expiryDays) {
		rs.DefaultExpiryRules = append(rs.DefaultExpiryRules, model.DefaultExpiryRule{
			ItemName:          k,
			Category:          t.aisles[k],
			DefaultExpiryDays: t.expiryDays[k],
		})
	}
	return rs
}

func alphabetical[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
