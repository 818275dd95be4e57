package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident(s string) string { return s }

func TestSubstringMatchesCaseInsensitive(t *testing.T) {
	t.Parallel()
	match := Substring(ident)

	assert.True(t, match("ban", "Banana"), "lowercase query should match mixed-case label")
	assert.True(t, match("BAN", "banana"), "uppercase query should match lowercase label")
	assert.True(t, match("", "anything"), "empty query matches everything")
	assert.False(t, match("xyz", "Banana"), "non-substring should not match")
}

func TestVisibleExcludesSelected(t *testing.T) {
	t.Parallel()
	all := []string{"a", "b", "c", "d"}

	visible := Visible(all, []string{"b", "d"}, "", Substring(ident))
	assert.Equal(t, []string{"a", "c"}, visible, "selected options should be removed")
}

func TestVisibleSkipsPredicateOnEmptyQuery(t *testing.T) {
	t.Parallel()
	// A predicate that matches nothing must not run when the query is empty.
	never := func(string, string) bool { return false }

	visible := Visible([]string{"a", "b"}, nil, "", never)
	assert.Equal(t, []string{"a", "b"}, visible)

	visible = Visible([]string{"a", "b"}, nil, "q", never)
	assert.Empty(t, visible, "non-empty query should apply the predicate")
}

func TestVisibleFiltersAndReindexes(t *testing.T) {
	t.Parallel()
	all := []string{"Apple", "Banana", "Cherry", "Cranberry"}

	visible := Visible(all, nil, "an", Substring(ident))
	require.Equal(t, []string{"Banana", "Cranberry"}, visible)

	// Indices are dense over the filtered list, not the full list.
	assert.Equal(t, "Banana", visible[0])
	assert.Equal(t, "Cranberry", visible[1])
}

func TestVisibleSelectionAndQueryCombine(t *testing.T) {
	t.Parallel()
	all := []string{"Apple", "Banana", "Cranberry"}

	visible := Visible(all, []string{"Banana"}, "an", Substring(ident))
	assert.Equal(t, []string{"Cranberry"}, visible, "selected exclusion applies before the predicate")
}

func TestClampIndex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, ClampIndex(-1, 5), "negative index clamps to 0")
	assert.Equal(t, 4, ClampIndex(7, 5), "overflow clamps to last index")
	assert.Equal(t, 2, ClampIndex(2, 5), "in-range index is unchanged")
	assert.Equal(t, 0, ClampIndex(3, 0), "empty list yields 0")
}
