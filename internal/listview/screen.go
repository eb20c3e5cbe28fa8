package listview

import (
	"strings"
	"sync"
)

// Screen is the shared mechanism behind every tabular dashboard view: one
// fetched collection, a search-filtered view over it, fixed-size pagination,
// and in-place row patching after mutating actions. The fetched collection
// is only replaced by an explicit Reload; row actions patch it locally.
type Screen[T any] struct {
	mu       sync.Mutex
	all      []T
	filtered []T
	search   string
	page     int
	perPage  int
	id       func(T) string
	fields   func(T) []string
	inFlight map[string]bool
}

// PageView is what a screen renders for the current page.
type PageView[T any] struct {
	Items      []T    `json:"items"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
	Search     string `json:"search,omitempty"`
}

// NewScreen builds a screen over an already-fetched collection. id yields a
// row's identifier; fields yields the values the search box matches against.
func NewScreen[T any](items []T, perPage int, id func(T) string, fields func(T) []string) *Screen[T] {
	s := &Screen[T]{
		perPage:  perPage,
		id:       id,
		fields:   fields,
		inFlight: make(map[string]bool),
	}
	s.reload(items)
	return s
}

// Reload replaces the underlying collection, keeping the current search term.
func (s *Screen[T]) Reload(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reload(items)
}

func (s *Screen[T]) reload(items []T) {
	s.all = make([]T, len(items))
	copy(s.all, items)
	s.refilter()
	s.page = 1
}

// SetSearch recomputes the filtered view with a case-insensitive substring
// match over the designated fields and resets pagination to page 1. An
// empty term yields the full collection.
func (s *Screen[T]) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.search == term {
		return
	}
	s.search = term
	s.refilter()
	s.page = 1
}

func (s *Screen[T]) refilter() {
	term := strings.ToLower(strings.TrimSpace(s.search))
	if term == "" {
		s.filtered = make([]T, len(s.all))
		copy(s.filtered, s.all)
		return
	}

	s.filtered = s.filtered[:0]
	for _, item := range s.all {
		for _, field := range s.fields(item) {
			if strings.Contains(strings.ToLower(field), term) {
				s.filtered = append(s.filtered, item)
				break
			}
		}
	}
}

// SetPage clamps navigation to [1, totalPages].
func (s *Screen[T]) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page < 1 {
		page = 1
	}
	if max := s.totalPages(); page > max {
		page = max
	}
	s.page = page
}

func (s *Screen[T]) totalPages() int {
	pages := (len(s.filtered) + s.perPage - 1) / s.perPage
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Page returns the current page slice of the filtered view.
func (s *Screen[T]) Page() PageView[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := (s.page - 1) * s.perPage
	end := start + s.perPage
	if start > len(s.filtered) {
		start = len(s.filtered)
	}
	if end > len(s.filtered) {
		end = len(s.filtered)
	}

	items := make([]T, end-start)
	copy(items, s.filtered[start:end])

	return PageView[T]{
		Items:      items,
		Total:      len(s.filtered),
		Page:       s.page,
		PageSize:   s.perPage,
		TotalPages: s.totalPages(),
		Search:     s.search,
	}
}

// Append adds a row to the full collection and refreshes the filtered view
// against the current search term.
func (s *Screen[T]) Append(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.all = append(s.all, item)
	s.refilter()
}

// Remove drops the row from both the full and filtered collections. When
// the removal empties the current page and it was not page 1, pagination
// steps back one page.
func (s *Screen[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	s.all = deleteByID(s.all, s.id, id, &found)
	if !found {
		return false
	}
	s.filtered = deleteByID(s.filtered, s.id, id, new(bool))

	if s.page > s.totalPages() {
		s.page = s.totalPages()
	}
	return true
}

// Patch applies fn to the matching row in both collections.
func (s *Screen[T]) Patch(id string, fn func(*T)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.all {
		if s.id(s.all[i]) == id {
			fn(&s.all[i])
			found = true
		}
	}
	for i := range s.filtered {
		if s.id(s.filtered[i]) == id {
			fn(&s.filtered[i])
		}
	}
	return found
}

// PatchAll applies fn to every row in both collections; fn reports whether
// it changed the row. It returns the number of changed rows in the full
// collection.
func (s *Screen[T]) PatchAll(fn func(*T) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := 0
	for i := range s.all {
		if fn(&s.all[i]) {
			changed++
		}
	}
	for i := range s.filtered {
		fn(&s.filtered[i])
	}
	return changed
}

// Get returns a copy of the matching row from the full collection.
func (s *Screen[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.all {
		if s.id(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (s *Screen[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.all)
}

// BeginAction marks a row action as in flight. It reports false when the
// row already has an outstanding request, so a double click does not send
// a second one.
func (s *Screen[T]) BeginAction(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[id] {
		return false
	}
	s.inFlight[id] = true
	return true
}

func (s *Screen[T]) EndAction(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, id)
}

func deleteByID[T any](items []T, id func(T) string, target string, found *bool) []T {
	out := items[:0]
	for _, item := range items {
		if id(item) == target {
			*found = true
			continue
		}
		out = append(out, item)
	}
	return out
}
