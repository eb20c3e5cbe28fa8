package listview

// Paginate is the stateless variant of the page computation, for read-only
// screens that keep no per-context state between requests.
func Paginate[T any](items []T, page, perPage int) PageView[T] {
	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return PageView[T]{
		Items:      out,
		Total:      len(items),
		Page:       page,
		PageSize:   perPage,
		TotalPages: totalPages,
	}
}
