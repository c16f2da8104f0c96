// Package query holds the pure filter predicates shared by the ledgers.
// All combinators are AND; an absent filter is always-true.
package query

import "strings"

// MatchText reports whether q is a case-insensitive substring of any of the
// given fields. An empty query matches everything.
func MatchText(q string, fields ...string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// MatchValue reports whether got equals want. An empty want, or want equal to
// the wildcard value, matches everything.
func MatchValue(got, want, wildcard string) bool {
	if want == "" || want == wildcard {
		return true
	}
	return got == want
}

// MatchDate reports whether got equals the wanted "YYYY-MM-DD" date; an
// empty want matches everything.
func MatchDate(got, want string) bool {
	return want == "" || got == want
}

// SortKey combines a "YYYY-MM-DD" date and "HH:MM" time into a key whose
// lexicographic order is chronological order.
func SortKey(date, time string) string {
	return date + " " + time
}
