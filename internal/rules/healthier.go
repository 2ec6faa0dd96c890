package rules

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dukerupert/smartshopper/internal/model"
)

// Tokens that say nothing about what an item is.
var ignoredTokens = map[string]bool{
	"and":     true,
	"the":     true,
	"with":    true,
	"fresh":   true,
	"organic": true,
	"large":   true,
	"small":   true,
	"pack":    true,
	"bag":     true,
	"box":     true,
	"bottle":  true,
	"can":     true,
	"jar":     true,
}

// EvaluateHealthier suggests healthier swaps for items on the list.
//
// An exact table match is tried first for every distinct name. Names that
// had no exact entry, and are not themselves a healthy alternative, fall
// back to fuzzy matching against the table keys in order of match quality.
// Each name yields at most one suggestion, and the fuzzy pass never proposes
// the same alternative twice or one already on the list.
func EvaluateHealthier(list []model.GroceryItem, t *Tables) []model.Suggestion {
	onList := listKeys(list)

	type entry struct{ key, name string }
	var names []entry
	seen := make(map[string]bool, len(list))
	for _, item := range list {
		key := item.Key()
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, entry{key: key, name: strings.TrimSpace(item.Name)})
	}

	suggestions := []model.Suggestion{}
	matched := make(map[string]bool, len(names))
	suggested := make(map[string]bool)

	for _, n := range names {
		alt, ok := t.healthier[n.key]
		if !ok {
			continue
		}
		matched[n.key] = true
		altKey := model.NameKey(alt)
		if onList[altKey] {
			continue
		}
		suggested[altKey] = true
		suggestions = append(suggestions, healthierSuggestion(n.name, alt))
	}

	for _, n := range names {
		if matched[n.key] || t.healthyChoices[n.key] {
			continue
		}
		for _, m := range t.fuzzyMatches(n.key) {
			alt := t.healthier[m.key]
			altKey := model.NameKey(alt)
			if altKey == n.key || suggested[altKey] || onList[altKey] {
				continue
			}
			// Loose matches must keep a word of the original item so that
			// "milk" is not swapped for whatever "milk tea" maps to.
			if m.rank > matchSubstringKeyInName && !shareWord(n.key, altKey) {
				continue
			}
			suggested[altKey] = true
			suggestions = append(suggestions, healthierSuggestion(n.name, alt))
			break
		}
	}
	return suggestions
}

func healthierSuggestion(name, alt string) model.Suggestion {
	return model.Suggestion{
		Item:   alt,
		Reason: fmt.Sprintf("Consider replacing %s with %s for a healthier option.", name, alt),
		Type:   model.SuggestionHealthier,
	}
}

// Match ranks, best first.
const (
	matchExact = iota
	matchKeyInName
	matchSubstringKeyInName
	matchNameInKey
	matchSubstringNameInKey
	matchSharedWord
	matchPartialWord
)

// minSubstringLen is the shortest letters-only key or name that may match
// by plain substring containment.
const minSubstringLen = 4

type fuzzyMatch struct {
	key  string
	rank int
}

// fuzzyMatches returns the healthier table keys related to name, best
// match first. Keys found inside the name prefer the longest key; looser
// matches prefer the shortest.
func (t *Tables) fuzzyMatches(name string) []fuzzyMatch {
	var matches []fuzzyMatch
	for _, key := range t.healthierKeys {
		if rank, ok := matchRank(name, key); ok {
			matches = append(matches, fuzzyMatch{key: key, rank: rank})
		}
	}
	slices.SortStableFunc(matches, func(a, b fuzzyMatch) int {
		if a.rank != b.rank {
			return a.rank - b.rank
		}
		if a.rank <= matchSubstringKeyInName {
			return len(b.key) - len(a.key)
		}
		if len(a.key) != len(b.key) {
			return len(a.key) - len(b.key)
		}
		return strings.Compare(a.key, b.key)
	})
	return matches
}

// matchRank reports how an item name relates to a table key: equal, one
// containing the other as whole words or as a plain substring with spaces
// and punctuation dropped, or sharing a significant word exactly or by
// substring. Substrings only count when the shorter side has at least four
// letters, which keeps "tea" out of "steak".
func matchRank(name, key string) (int, bool) {
	if name == key {
		return matchExact, true
	}
	nameWords, keyWords := words(name), words(key)
	if containsWords(nameWords, keyWords) {
		return matchKeyInName, true
	}
	nameRunes, keyRunes := compact(name), compact(key)
	if utf8.RuneCountInString(keyRunes) >= minSubstringLen && strings.Contains(nameRunes, keyRunes) {
		return matchSubstringKeyInName, true
	}
	if containsWords(keyWords, nameWords) {
		return matchNameInKey, true
	}
	if utf8.RuneCountInString(nameRunes) >= minSubstringLen && strings.Contains(keyRunes, nameRunes) {
		return matchSubstringNameInKey, true
	}

	nameTokens, keyTokens := significantTokens(name), significantTokens(key)
	for _, a := range nameTokens {
		for _, b := range keyTokens {
			if a == b {
				return matchSharedWord, true
			}
		}
	}
	for _, a := range nameTokens {
		for _, b := range keyTokens {
			if partialWord(a, b) {
				return matchPartialWord, true
			}
		}
	}
	return 0, false
}

// compact drops everything but letters and digits, so "ice cream" and
// "icecream" compare equal.
func compact(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

func partialWord(a, b string) bool {
	if utf8.RuneCountInString(a) > utf8.RuneCountInString(b) {
		a, b = b, a
	}
	return utf8.RuneCountInString(a) >= 4 && strings.Contains(b, a)
}

// containsWords reports whether sub appears as a contiguous run in words.
func containsWords(words, sub []string) bool {
	if len(sub) == 0 || len(sub) > len(words) {
		return false
	}
	for i := 0; i+len(sub) <= len(words); i++ {
		if slices.Equal(words[i:i+len(sub)], sub) {
			return true
		}
	}
	return false
}

func shareWord(a, b string) bool {
	tokens := significantTokens(b)
	for _, tok := range significantTokens(a) {
		if slices.Contains(tokens, tok) {
			return true
		}
	}
	return false
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// words splits s into singular words.
func words(s string) []string {
	fields := splitWords(s)
	for i, f := range fields {
		fields[i] = singular(f)
	}
	return fields
}

// significantTokens returns the singular words of s longer than two
// letters, minus filler such as "fresh" or "pack".
func significantTokens(s string) []string {
	fields := splitWords(s)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if utf8.RuneCountInString(f) <= 2 || ignoredTokens[f] {
			continue
		}
		out = append(out, singular(f))
	}
	return out
}

func singular(word string) string {
	switch {
	case len(word) <= 3, strings.HasSuffix(word, "ss"):
		return word
	case strings.HasSuffix(word, "ies"):
		return strings.TrimSuffix(word, "ies") + "y"
	case strings.HasSuffix(word, "oes"):
		return strings.TrimSuffix(word, "es")
	case strings.HasSuffix(word, "s"):
		return strings.TrimSuffix(word, "s")
	}
	return word
}
