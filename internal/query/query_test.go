package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchTextEmptyQueryMatchesAll(t *testing.T) {
	assert.True(t, MatchText(""))
	assert.True(t, MatchText("", "anything"))
}

func TestMatchTextCaseInsensitiveSubstring(t *testing.T) {
	assert.True(t, MatchText("marina", "Dubai Marina"))
	assert.True(t, MatchText("MARINA", "dubai marina"))
	assert.False(t, MatchText("marina", "Downtown"))
}

func TestMatchTextAnyFieldHits(t *testing.T) {
	assert.True(t, MatchText("ahmed", "Downtown", "Ahmed Ali", ""))
	assert.False(t, MatchText("ahmed", "Downtown", "Sara", "quick drop"))
}

func TestMatchValueWildcard(t *testing.T) {
	assert.True(t, MatchValue("talabat", "", "all"))
	assert.True(t, MatchValue("talabat", "all", "all"))
	assert.True(t, MatchValue("talabat", "talabat", "all"))
	assert.False(t, MatchValue("talabat", "jahez", "all"))
}

func TestMatchDate(t *testing.T) {
	assert.True(t, MatchDate("2026-03-14", ""))
	assert.True(t, MatchDate("2026-03-14", "2026-03-14"))
	assert.False(t, MatchDate("2026-03-14", "2026-03-13"))
}

func TestSortKeyOrdersChronologically(t *testing.T) {
	early := SortKey("2026-03-14", "09:05")
	late := SortKey("2026-03-14", "18:30")
	nextDay := SortKey("2026-03-15", "00:01")

	assert.Less(t, early, late)
	assert.Less(t, late, nextDay)
}
