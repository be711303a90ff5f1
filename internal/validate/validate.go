package validate

import (
	"regexp"
	"strconv"
	"strings"

	"aquashop/internal/domain"
)

var reID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Email applies the storefront's acceptance shape: non-empty, bounded, and
// containing an '@'. Deliberately looser than RFC validation; the login
// heuristic is defined this way.
func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, strings.Contains(s, "@")
}

// Password only checks the minimum length the login heuristic asks for.
func Password(s string) bool {
	return len(s) >= 4
}

// Qty parses a quantity and clamps it to [1, max]. This is the server-side
// twin of the card's quantity selector, which never offers more than the
// listing's stock.
func Qty(s string, max int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		n = 1
	}
	if max > 0 && n > max {
		n = max
	}
	return n
}

// Category accepts a stored category or the "All" pseudo-category. Empty
// input means All.
func Category(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == domain.CategoryAll {
		return domain.CategoryAll, true
	}
	for _, c := range domain.Categories {
		if s == c {
			return s, true
		}
	}
	return "", false
}

// Sort normalizes the sort selector; anything unknown falls back to default
// catalog order.
func Sort(s string) string {
	switch s {
	case domain.SortPriceAsc, domain.SortPriceDesc:
		return s
	default:
		return domain.SortDefault
	}
}

// ID validates a simple resource identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Price parses a non-negative amount from a form field.
func Price(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil && v >= 0
}

// Stock parses a non-negative integer from a form field.
func Stock(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n >= 0
}
