package domain

import "strings"

// SuggestLimit caps the live suggestion dropdown.
const SuggestLimit = 6

// Suggest returns up to limit products whose name contains query,
// case-insensitive, preserving source order. A blank query yields
// nothing: the caller substitutes its static trending list.
func Suggest(ps []Product, query string, limit int) []Product {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}

	var out []Product
	for _, p := range ps {
		if containsFold(p.Name, query) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
