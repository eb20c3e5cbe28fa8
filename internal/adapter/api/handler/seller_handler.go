package handler

import (
	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/middleware"
	"gebeya/internal/listview"
	"gebeya/internal/usecase"
	"gebeya/pkg/response"
	"gebeya/pkg/utils"
)

type SellerHandler struct {
	sellerUseCase *usecase.SellerUseCase
	authUseCase   *usecase.AuthUseCase
	contexts      *middleware.ContextMiddleware
}

func NewSellerHandler(sellerUseCase *usecase.SellerUseCase, authUseCase *usecase.AuthUseCase, contexts *middleware.ContextMiddleware) *SellerHandler {
	return &SellerHandler{
		sellerUseCase: sellerUseCase,
		authUseCase:   authUseCase,
		contexts:      contexts,
	}
}

// Products serves the seller's listing grid. The first visit mounts the
// screen from the API; later requests page and filter the held snapshot
// without re-fetching.
func (h *SellerHandler) Products(c echo.Context) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return response.RedirectToLogin(c)
	}
	contextID := middleware.ContextID(c)

	screen, mounted := h.sellerUseCase.Products(contextID)
	if !mounted {
		var err error
		screen, err = h.sellerUseCase.MountProducts(c.Request().Context(), contextID, sess)
		if err != nil {
			return respondProtected(c, h.authUseCase, h.contexts, err)
		}
	}

	applyListQuery(c, screen)
	return screenPage(c, screen)
}

// Ratings serves the seller's reviews tab: every rating received with the
// running average.
func (h *SellerHandler) Ratings(c echo.Context) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return response.RedirectToLogin(c)
	}

	summary, err := h.sellerUseCase.Ratings(c.Request().Context(), sess)
	if err != nil {
		return respondProtected(c, h.authUseCase, h.contexts, err)
	}
	return response.Success(c, map[string]interface{}{
		"ratings": summary.Ratings,
		"average": summary.Average,
	})
}

// applyListQuery pushes the request's search and page params into a mounted
// screen. Search applies first so the page lands inside the filtered set.
func applyListQuery[T any](c echo.Context, screen *listview.Screen[T]) {
	query := utils.GetListQuery(c)
	if query.HasQ {
		screen.SetSearch(query.Search)
	}
	if query.Page > 0 {
		screen.SetPage(query.Page)
	}
}

func screenPage[T any](c echo.Context, screen *listview.Screen[T]) error {
	page := screen.Page()
	return response.Paginated(c, page.Items, page.Total, page.Page, page.PageSize, page.TotalPages)
}
