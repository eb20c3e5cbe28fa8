package handler

import (
	"strings"

	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/middleware"
	"gebeya/internal/domain/entity"
)

// navItem is one layout chrome link. Active marks the link matching the
// current path so the client highlights it without route logic of its own.
type navItem struct {
	Label  string `json:"label"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

// navFor builds the layout chrome for the current request. Anonymous
// contexts get the public links plus Login; signed-in contexts get a Sell
// entry and their role's dashboard entry instead.
func navFor(c echo.Context) []navItem {
	items := []navItem{
		{Label: "Home", Path: "/"},
		{Label: "Videos", Path: "/videos"},
		{Label: "About", Path: "/about"},
	}

	if sess, ok := middleware.CurrentSession(c); ok {
		items = append(items, navItem{Label: "Sell", Path: "/sell"})
		switch sess.NormalizedRole() {
		case entity.RoleAdmin:
			items = append(items, navItem{Label: "Dashboard", Path: "/admin"})
		case entity.RoleSuperAdmin:
			items = append(items, navItem{Label: "Dashboard", Path: "/superadmin"})
		default:
			items = append(items, navItem{Label: "My Store", Path: "/seller-dashboard"})
		}
	} else {
		items = append(items, navItem{Label: "Login", Path: "/login"})
	}

	current := c.Request().URL.Path
	for i := range items {
		items[i].Active = pathMatches(current, items[i].Path)
	}
	return items
}

func pathMatches(current, path string) bool {
	if path == "/" {
		return current == "/"
	}
	return current == path || strings.HasPrefix(current, path+"/")
}
