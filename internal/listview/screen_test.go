package listview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    string
	Title string
}

func newRows(n int) []row {
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{ID: fmt.Sprintf("r%d", i+1), Title: fmt.Sprintf("Item %d", i+1)}
	}
	return rows
}

func newRowScreen(rows []row, perPage int) *Screen[row] {
	return NewScreen(rows, perPage,
		func(r row) string { return r.ID },
		func(r row) []string { return []string{r.Title} })
}

func TestScreenPagination(t *testing.T) {
	screen := newRowScreen(newRows(12), 5)

	page := screen.Page()
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 12, page.Total)
	assert.Len(t, page.Items, 5)

	screen.SetPage(3)
	page = screen.Page()
	assert.Len(t, page.Items, 2)
	assert.Equal(t, "r11", page.Items[0].ID)
}

func TestScreenPageClamping(t *testing.T) {
	screen := newRowScreen(newRows(12), 5)

	screen.SetPage(99)
	assert.Equal(t, 3, screen.Page().Page)

	screen.SetPage(-1)
	assert.Equal(t, 1, screen.Page().Page)
}

func TestScreenEmptyHasOnePage(t *testing.T) {
	screen := newRowScreen(nil, 5)

	page := screen.Page()
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestScreenSearchFiltersAndResetsPage(t *testing.T) {
	rows := []row{
		{ID: "a", Title: "Leather Bag"},
		{ID: "b", Title: "Canvas Bag"},
		{ID: "c", Title: "Silver Ring"},
	}
	screen := newRowScreen(rows, 2)
	screen.SetPage(2)

	screen.SetSearch("BAG")
	page := screen.Page()
	assert.Equal(t, 1, page.Page)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "a", page.Items[0].ID)

	// Every filtered row matches the term
	for _, r := range page.Items {
		assert.Contains(t, r.Title, "Bag")
	}

	screen.SetSearch("")
	assert.Equal(t, 3, screen.Page().Total)
}

func TestScreenRepeatedSearchKeepsPage(t *testing.T) {
	screen := newRowScreen(newRows(12), 5)
	screen.SetSearch("Item")
	screen.SetPage(2)

	screen.SetSearch("Item")
	assert.Equal(t, 2, screen.Page().Page)
}

func TestScreenRemoveStepsPageBack(t *testing.T) {
	// 11 rows at 5 per page: page 3 holds only r11
	screen := newRowScreen(newRows(11), 5)
	screen.SetPage(3)

	screen.Remove("r11")
	page := screen.Page()
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 10, page.Total)
}

func TestScreenRemoveKeepsPageWhenStillPopulated(t *testing.T) {
	screen := newRowScreen(newRows(12), 5)
	screen.SetPage(2)

	screen.Remove("r6")
	assert.Equal(t, 2, screen.Page().Page)
}

func TestScreenAppendShowsInFilter(t *testing.T) {
	screen := newRowScreen(newRows(3), 5)
	screen.SetSearch("Fresh")
	assert.Equal(t, 0, screen.Page().Total)

	screen.Append(row{ID: "new", Title: "Fresh Item"})
	assert.Equal(t, 1, screen.Page().Total)
}

func TestScreenPatch(t *testing.T) {
	screen := newRowScreen(newRows(3), 5)

	ok := screen.Patch("r2", func(r *row) { r.Title = "Renamed" })
	assert.True(t, ok)

	got, ok := screen.Get("r2")
	require.True(t, ok)
	assert.Equal(t, "Renamed", got.Title)
}

func TestScreenPatchAll(t *testing.T) {
	screen := newRowScreen(newRows(4), 5)

	n := screen.PatchAll(func(r *row) bool {
		if r.ID == "r1" || r.ID == "r3" {
			r.Title = "Flagged"
			return true
		}
		return false
	})
	assert.Equal(t, 2, n)
}

func TestScreenInFlightGuard(t *testing.T) {
	screen := newRowScreen(newRows(3), 5)

	assert.True(t, screen.BeginAction("r1"))
	assert.False(t, screen.BeginAction("r1"))
	assert.True(t, screen.BeginAction("r2"))

	screen.EndAction("r1")
	assert.True(t, screen.BeginAction("r1"))
}

func TestPaginateStateless(t *testing.T) {
	rows := newRows(9)

	page := Paginate(rows, 2, 4)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Items, 4)
	assert.Equal(t, "r5", page.Items[0].ID)

	page = Paginate(rows, 50, 4)
	assert.Equal(t, 3, page.Page)
	assert.Len(t, page.Items, 1)

	page = Paginate([]row{}, 1, 4)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
}

func TestRegistryLookup(t *testing.T) {
	registry := NewRegistry()
	screen := newRowScreen(newRows(2), 5)

	registry.Put("ctx", "rows", screen)

	got, ok := Lookup[row](registry, "ctx", "rows")
	require.True(t, ok)
	assert.Equal(t, 2, got.Len())

	_, ok = Lookup[row](registry, "ctx", "other")
	assert.False(t, ok)

	registry.Drop("ctx")
	_, ok = Lookup[row](registry, "ctx", "rows")
	assert.False(t, ok)
}
