package handler

import (
	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/middleware"
	"gebeya/internal/usecase"
	"gebeya/pkg/errors"
	"gebeya/pkg/response"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
	authUseCase  *usecase.AuthUseCase
	contexts     *middleware.ContextMiddleware
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase, authUseCase *usecase.AuthUseCase, contexts *middleware.ContextMiddleware) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		authUseCase:  authUseCase,
		contexts:     contexts,
	}
}

// Products serves the moderation table, five rows per page.
func (h *AdminHandler) Products(c echo.Context) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return response.RedirectToLogin(c)
	}
	contextID := middleware.ContextID(c)

	screen, mounted := h.adminUseCase.Products(contextID)
	if !mounted {
		var err error
		screen, err = h.adminUseCase.MountProducts(c.Request().Context(), contextID, sess)
		if err != nil {
			return respondProtected(c, h.authUseCase, h.contexts, err)
		}
	}

	applyListQuery(c, screen)
	return screenPage(c, screen)
}

// DeleteProduct removes a listing after an explicit confirmation flag; the
// table patches locally on success.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return response.RedirectToLogin(c)
	}
	if c.QueryParam("confirm") != "true" {
		return response.Error(c, errors.BadRequest("Deletion requires confirmation.", nil))
	}

	err := h.adminUseCase.DeleteProduct(c.Request().Context(), middleware.ContextID(c), sess, c.Param("productId"))
	if err != nil {
		return respondProtected(c, h.authUseCase, h.contexts, err)
	}
	return response.Success(c, map[string]string{"message": "Product deleted successfully."})
}

// Report generates the AI analysis for one listing.
func (h *AdminHandler) Report(c echo.Context) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return response.RedirectToLogin(c)
	}

	report, err := h.adminUseCase.ProductReport(c.Request().Context(), sess, c.Param("productId"))
	if err != nil {
		return respondProtected(c, h.authUseCase, h.contexts, err)
	}
	return response.Success(c, map[string]interface{}{"report": report})
}

// WarnSeller increments a seller's warning counter from the products table.
func (h *AdminHandler) WarnSeller(c echo.Context) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return response.RedirectToLogin(c)
	}

	result, err := h.adminUseCase.WarnSeller(c.Request().Context(), middleware.ContextID(c), sess, c.Param("sellerId"))
	if err != nil {
		return respondProtected(c, h.authUseCase, h.contexts, err)
	}
	return response.Success(c, map[string]interface{}{
		"warnings": result.Warnings,
		"isActive": result.IsActive,
	})
}

// Users serves the account-management table.
func (h *AdminHandler) Users(c echo.Context) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return response.RedirectToLogin(c)
	}
	contextID := middleware.ContextID(c)

	screen, mounted := h.adminUseCase.Users(contextID)
	if !mounted {
		var err error
		screen, err = h.adminUseCase.MountUsers(c.Request().Context(), contextID, sess)
		if err != nil {
			return respondProtected(c, h.authUseCase, h.contexts, err)
		}
	}

	applyListQuery(c, screen)
	return screenPage(c, screen)
}

// ActivateUser reinstates a deactivated account.
func (h *AdminHandler) ActivateUser(c echo.Context) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return response.RedirectToLogin(c)
	}

	err := h.adminUseCase.ActivateUser(c.Request().Context(), middleware.ContextID(c), sess, c.Param("userId"))
	if err != nil {
		return respondProtected(c, h.authUseCase, h.contexts, err)
	}
	return response.Success(c, map[string]string{"message": "User activated successfully."})
}

// WarnUser increments a user's warning counter from the users table.
func (h *AdminHandler) WarnUser(c echo.Context) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return response.RedirectToLogin(c)
	}

	result, err := h.adminUseCase.IncreaseUserWarning(c.Request().Context(), middleware.ContextID(c), sess, c.Param("userId"))
	if err != nil {
		return respondProtected(c, h.authUseCase, h.contexts, err)
	}
	return response.Success(c, map[string]interface{}{
		"warnings": result.Warnings,
		"isActive": result.IsActive,
	})
}
