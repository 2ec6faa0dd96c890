package rules

import (
	"fmt"
	"strings"

	"github.com/dukerupert/smartshopper/internal/model"
)

// EvaluateCategory suggests items commonly bought together with items on
// the list. Each list name triggers once. Several triggers may suggest the
// same item; only identical suggestions are collapsed.
func EvaluateCategory(list []model.GroceryItem, t *Tables) []model.Suggestion {
	onList := listKeys(list)
	triggered := make(map[string]bool, len(list))
	seen := make(map[model.Suggestion]bool)

	suggestions := []model.Suggestion{}
	for _, item := range list {
		key := item.Key()
		if key == "" || triggered[key] {
			continue
		}
		triggered[key] = true

		name := strings.TrimSpace(item.Name)
		for _, assoc := range t.Associations(key) {
			if onList[model.NameKey(assoc)] {
				continue
			}
			s := model.Suggestion{
				Item:   assoc,
				Reason: fmt.Sprintf("You have %s in your list. Would you like to add %s as well?", name, assoc),
				Type:   model.SuggestionCategory,
			}
			if seen[s] {
				continue
			}
			seen[s] = true
			suggestions = append(suggestions, s)
		}
	}
	return suggestions
}
