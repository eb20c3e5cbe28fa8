package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// ListQuery carries the per-request view parameters of a list screen.
type ListQuery struct {
	Page   int
	Search string
	HasQ   bool
}

// GetListQuery extracts list screen parameters from the request.
func GetListQuery(c echo.Context) ListQuery {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	q := c.QueryParams()
	_, hasQ := q["q"]

	return ListQuery{
		Page:   page,
		Search: c.QueryParam("q"),
		HasQ:   hasQ,
	}
}
