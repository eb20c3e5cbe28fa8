package handler

import (
	"bytes"
	"io"
	"mime/multipart"

	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/middleware"
	"gebeya/internal/upstream"
	"gebeya/internal/usecase"
	"gebeya/pkg/errors"
	"gebeya/pkg/response"
)

// ProfileHandler backs the account tab on every dashboard. The admin
// surfaces reuse it against the admin profile endpoints.
type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
	authUseCase    *usecase.AuthUseCase
	contexts       *middleware.ContextMiddleware
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase, authUseCase *usecase.AuthUseCase, contexts *middleware.ContextMiddleware) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
		authUseCase:    authUseCase,
		contexts:       contexts,
	}
}

// Update edits the signed-in account from a multipart form; the photo file
// is optional. The response carries the merged session so the header and
// sidebar refresh immediately.
func (h *ProfileHandler) Update(admin bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := middleware.CurrentSession(c)
		if !ok {
			return response.RedirectToLogin(c)
		}

		input := usecase.UpdateProfileInput{
			FirstName:   c.FormValue("firstName"),
			LastName:    c.FormValue("lastName"),
			Email:       c.FormValue("email"),
			PhoneNumber: c.FormValue("phoneNumber"),
			Gender:      c.FormValue("gender"),
		}

		if fh, err := c.FormFile("photo"); err == nil {
			photo, err := listingImageFromFile(fh)
			if err != nil {
				return response.Error(c, err)
			}
			input.Photo = photo
		}

		merged, err := h.profileUseCase.UpdateProfile(c.Request().Context(), middleware.ContextID(c), sess, input, admin)
		if err != nil {
			return respondProtected(c, h.authUseCase, h.contexts, err)
		}
		return response.Success(c, sessionView(merged))
	}
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

func (h *ProfileHandler) ChangePassword(admin bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, ok := middleware.CurrentSession(c)
		if !ok {
			return response.RedirectToLogin(c)
		}

		var req changePasswordRequest
		if err := c.Bind(&req); err != nil {
			return response.Error(c, err)
		}
		if err := c.Validate(&req); err != nil {
			return response.Error(c, err)
		}

		err := h.profileUseCase.ChangePassword(c.Request().Context(), sess, usecase.ChangePasswordInput{
			CurrentPassword: req.CurrentPassword,
			NewPassword:     req.NewPassword,
			ConfirmPassword: req.ConfirmPassword,
		}, admin)
		if err != nil {
			return respondProtected(c, h.authUseCase, h.contexts, err)
		}
		return response.Success(c, map[string]string{"message": "Password updated successfully."})
	}
}

func listingImageFromFile(fh *multipart.FileHeader) (*upstream.ListingImage, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, errors.BadRequest("Invalid upload.", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.BadRequest("Invalid upload.", err)
	}
	return &upstream.ListingImage{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Reader:      bytes.NewReader(data),
	}, nil
}
