package board

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/jask/orderboard/internal/order"
)

// Find returns the index of the order best matching query. A case-insensitive
// substring of the client name or phone wins outright; otherwise the client
// name (or one of its words) closest by edit distance is taken, provided the
// distance is at most half the query length.
func Find(orders []order.Enriched, query string) (int, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0, false
	}
	for i, o := range orders {
		if o.Client == nil {
			continue
		}
		if strings.Contains(strings.ToLower(o.Client.Name), q) || strings.Contains(o.Client.Phone, q) {
			return i, true
		}
	}

	limit := utf8.RuneCountInString(q) / 2
	best, bestDist := -1, limit+1
	for i, o := range orders {
		if o.Client == nil {
			continue
		}
		name := strings.ToLower(o.Client.Name)
		candidates := append([]string{name}, strings.Fields(name)...)
		for _, c := range candidates {
			if d := levenshtein.ComputeDistance(q, c); d < bestDist {
				best, bestDist = i, d
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
