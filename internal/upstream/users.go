package upstream

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"gebeya/internal/domain/entity"
)

type myProductsPayload struct {
	Success  bool             `json:"success"`
	Products []entity.Product `json:"products"`
}

// MyProducts lists the authenticated seller's listings.
func (c *Client) MyProducts(ctx context.Context, token string) ([]entity.Product, error) {
	var payload myProductsPayload
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/my-products", token, nil, &payload); err != nil {
		return nil, err
	}
	c.absolutizeProducts(payload.Products)
	return payload.Products, nil
}

type productRatingsPayload struct {
	Ratings []entity.Rating `json:"ratings"`
}

// MyProductRatings lists the ratings received across the seller's products.
func (c *Client) MyProductRatings(ctx context.Context, token string) ([]entity.Rating, error) {
	var payload productRatingsPayload
	if err := c.doJSON(ctx, http.MethodGet, "/api/users/product-ratings", token, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Ratings, nil
}

// ProfileInput is the multipart profile edit. Photo is optional; when nil
// only the text fields travel.
type ProfileInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Gender      string
	Photo       *ListingImage
}

func (c *Client) profileForm(input ProfileInput, photoField string) func(w *multipart.Writer) error {
	return func(w *multipart.Writer) error {
		fields := map[string]string{
			"firstName":   input.FirstName,
			"lastName":    input.LastName,
			"email":       input.Email,
			"phoneNumber": input.PhoneNumber,
			"gender":      input.Gender,
		}
		for name, value := range fields {
			if err := w.WriteField(name, value); err != nil {
				return err
			}
		}
		if input.Photo != nil {
			part, err := w.CreateFormFile(photoField, input.Photo.Name)
			if err != nil {
				return err
			}
			if _, err := io.Copy(part, input.Photo.Reader); err != nil {
				return err
			}
		}
		return nil
	}
}

// UpdateProfile edits the user profile and returns the updated user record.
func (c *Client) UpdateProfile(ctx context.Context, token string, input ProfileInput) (*UserPayload, error) {
	var updated UserPayload
	if err := c.doMultipart(ctx, http.MethodPut, "/api/users/profile", token, c.profileForm(input, "profilePhoto"), &updated); err != nil {
		return nil, err
	}
	updated.ProfilePhoto = c.assetURL(updated.ProfilePhoto)
	return &updated, nil
}

type PasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (c *Client) ChangePassword(ctx context.Context, token string, input PasswordInput) error {
	return c.doJSON(ctx, http.MethodPut, "/api/users/password", token, input, nil)
}

// UpdateAdminProfile is the admin-surface variant of the profile edit.
func (c *Client) UpdateAdminProfile(ctx context.Context, token string, input ProfileInput) (*UserPayload, error) {
	var updated UserPayload
	if err := c.doMultipart(ctx, http.MethodPut, "/api/admin/profile", token, c.profileForm(input, "profilePhoto"), &updated); err != nil {
		return nil, err
	}
	updated.ProfilePhoto = c.assetURL(updated.ProfilePhoto)
	return &updated, nil
}

func (c *Client) ChangeAdminPassword(ctx context.Context, token string, input PasswordInput) error {
	return c.doJSON(ctx, http.MethodPut, "/api/admin/change-password", token, input, nil)
}
