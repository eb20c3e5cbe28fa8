package handler

import (
	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/middleware"
	"gebeya/internal/usecase"
	"gebeya/pkg/errors"
	"gebeya/pkg/response"
	"gebeya/pkg/utils"
)

type SuperAdminHandler struct {
	superAdminUseCase *usecase.SuperAdminUseCase
	authUseCase       *usecase.AuthUseCase
	contexts          *middleware.ContextMiddleware
}

func NewSuperAdminHandler(superAdminUseCase *usecase.SuperAdminUseCase, authUseCase *usecase.AuthUseCase, contexts *middleware.ContextMiddleware) *SuperAdminHandler {
	return &SuperAdminHandler{
		superAdminUseCase: superAdminUseCase,
		authUseCase:       authUseCase,
		contexts:          contexts,
	}
}

// Dashboard serves the overview: counters plus the paged admin table.
func (h *SuperAdminHandler) Dashboard(c echo.Context) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return response.RedirectToLogin(c)
	}
	contextID := middleware.ContextID(c)

	overview, err := h.superAdminUseCase.MountDashboard(c.Request().Context(), contextID, sess)
	if err != nil {
		return respondProtected(c, h.authUseCase, h.contexts, err)
	}

	page := overview.Admins.Page()
	return response.Success(c, map[string]interface{}{
		"stats":  overview.Stats,
		"admins": page,
	})
}

// Admins pages and filters the mounted admin table without re-fetching.
func (h *SuperAdminHandler) Admins(c echo.Context) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return response.RedirectToLogin(c)
	}
	contextID := middleware.ContextID(c)

	screen, mounted := h.superAdminUseCase.Admins(contextID)
	if !mounted {
		overview, err := h.superAdminUseCase.MountDashboard(c.Request().Context(), contextID, sess)
		if err != nil {
			return respondProtected(c, h.authUseCase, h.contexts, err)
		}
		screen = overview.Admins
	}

	query := utils.GetListQuery(c)
	if query.HasQ {
		screen.SetSearch(query.Search)
	}
	if query.Page > 0 {
		screen.SetPage(query.Page)
	}
	return screenPage(c, screen)
}

type createAdminRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

func (h *SuperAdminHandler) CreateAdmin(c echo.Context) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return response.RedirectToLogin(c)
	}

	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	created, err := h.superAdminUseCase.CreateAdmin(c.Request().Context(), middleware.ContextID(c), sess, usecase.CreateAdminInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return respondProtected(c, h.authUseCase, h.contexts, err)
	}
	return response.Created(c, map[string]interface{}{"admin": created})
}

func (h *SuperAdminHandler) DeleteAdmin(c echo.Context) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return response.RedirectToLogin(c)
	}
	if c.QueryParam("confirm") != "true" {
		return response.Error(c, errors.BadRequest("Deletion requires confirmation.", nil))
	}

	err := h.superAdminUseCase.DeleteAdmin(c.Request().Context(), middleware.ContextID(c), sess, c.Param("adminId"))
	if err != nil {
		return respondProtected(c, h.authUseCase, h.contexts, err)
	}
	return response.Success(c, map[string]string{"message": "Admin deleted successfully."})
}
