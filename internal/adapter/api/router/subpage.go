package router

import (
	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/handler"
)

// SubPageMap dispatches a dashboard's :page segment to its view handler.
// A missing segment lands on the default page; an unknown one renders the
// shared not-found state.
type SubPageMap struct {
	Default string
	Pages   map[string]echo.HandlerFunc
}

func (m SubPageMap) Handler() echo.HandlerFunc {
	return func(c echo.Context) error {
		page := c.Param("page")
		if page == "" {
			page = m.Default
		}
		view, ok := m.Pages[page]
		if !ok {
			return handler.NotFound(c)
		}
		return view(c)
	}
}
