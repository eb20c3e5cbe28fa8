package handler

import (
	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/middleware"
	"gebeya/internal/domain/entity"
	"gebeya/internal/usecase"
	"gebeya/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
	contexts    *middleware.ContextMiddleware
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, contexts *middleware.ContextMiddleware) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		contexts:    contexts,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Remember bool   `json:"remember"`
}

type sessionResponse struct {
	UserID       string `json:"userId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Gender       string `json:"gender,omitempty"`
	Role         string `json:"role"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
	Redirect     string `json:"redirect,omitempty"`
}

func sessionView(sess *entity.Session) sessionResponse {
	return sessionResponse{
		UserID:       sess.UserID,
		FirstName:    sess.FirstName,
		LastName:     sess.LastName,
		Email:        sess.Email,
		PhoneNumber:  sess.PhoneNumber,
		Gender:       sess.Gender,
		Role:         sess.NormalizedRole(),
		ProfilePhoto: sess.ProfilePhotoURL,
	}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	contextID := middleware.ContextID(c)
	result, err := h.authUseCase.Login(c.Request().Context(), contextID, usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Remember: req.Remember,
	})
	if err != nil {
		return response.Error(c, err)
	}

	h.contexts.Remember(c, contextID, req.Remember)
	return response.Success(c, sessionResult(result))
}

type registerRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required,min=6"`
	Remember    bool   `json:"remember"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	contextID := middleware.ContextID(c)
	result, err := h.authUseCase.Register(c.Request().Context(), contextID, usecase.RegisterInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Remember:    req.Remember,
	})
	if err != nil {
		return response.Error(c, err)
	}

	h.contexts.Remember(c, contextID, req.Remember)
	return response.Created(c, sessionResult(result))
}

func (h *AuthHandler) Logout(c echo.Context) error {
	h.authUseCase.Logout(middleware.ContextID(c))
	h.contexts.Forget(c)
	return response.Success(c, map[string]string{"redirect": "/login"})
}

// Me lets a freshly mounted view read the cached identity instead of
// waiting for an event that already fired.
func (h *AuthHandler) Me(c echo.Context) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return response.Success(c, nil)
	}
	return response.Success(c, sessionView(sess))
}

func sessionResult(result *usecase.AuthResult) sessionResponse {
	out := sessionView(&result.Session)
	out.Redirect = result.Redirect
	return out
}
