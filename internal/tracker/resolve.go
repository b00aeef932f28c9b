package tracker

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// resolve finds the item whose id equals ref, falling back to a
// case-insensitive name match. Misses carry fuzzy name suggestions.
func resolve[T any](kind string, items []T, ref string, id, name func(T) string) (T, error) {
	ref = strings.TrimSpace(ref)
	for _, it := range items {
		if id(it) == ref {
			return it, nil
		}
	}
	for _, it := range items {
		if strings.EqualFold(name(it), ref) {
			return it, nil
		}
	}

	names := make([]string, len(items))
	for i, it := range items {
		names[i] = name(it)
	}
	var zero T
	return zero, &NotFoundError{Kind: kind, Ref: ref, Suggestions: suggest(ref, names)}
}

// suggest returns up to maxSuggestions names ranked by fuzzy match score.
func suggest(ref string, names []string) []string {
	if ref == "" || len(names) == 0 {
		return nil
	}
	matches := fuzzy.Find(strings.ToLower(ref), lowerAll(names))
	out := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		out = append(out, names[m.Index])
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
