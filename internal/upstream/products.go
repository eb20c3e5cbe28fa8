package upstream

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"gebeya/internal/domain/entity"
)

type productListPayload struct {
	Data []entity.Product `json:"data"`
}

// ListProducts fetches the public catalog, optionally narrowed to one
// category. There is no single-product endpoint; detail views locate their
// item inside this collection.
func (c *Client) ListProducts(ctx context.Context, category string) ([]entity.Product, error) {
	path := "/api/products"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}

	var payload productListPayload
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &payload); err != nil {
		return nil, err
	}
	c.absolutizeProducts(payload.Data)
	return payload.Data, nil
}

// CreateListingInput is the multipart create-listing payload.
type CreateListingInput struct {
	Title       string
	Description string
	Category    string
	Price       string
	ContactInfo string
	UserID      string
	Images      []ListingImage
}

type ListingImage struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

// CreateListing posts the multipart listing and returns the created product.
func (c *Client) CreateListing(ctx context.Context, token string, input CreateListingInput) (*entity.Product, error) {
	build := func(w *multipart.Writer) error {
		fields := map[string]string{
			"title":       input.Title,
			"description": input.Description,
			"category":    input.Category,
			"price":       input.Price,
			"contactInfo": input.ContactInfo,
			"userId":      input.UserID,
		}
		for name, value := range fields {
			if err := w.WriteField(name, value); err != nil {
				return err
			}
		}
		for _, img := range input.Images {
			part, err := w.CreateFormFile("images", img.Name)
			if err != nil {
				return err
			}
			if _, err := io.Copy(part, img.Reader); err != nil {
				return err
			}
		}
		return nil
	}

	var created entity.Product
	if err := c.doMultipart(ctx, http.MethodPost, "/api/products", token, build, &created); err != nil {
		return nil, err
	}
	if created.ID == "" {
		return nil, errUnexpectedShape()
	}
	for i := range created.Images {
		created.Images[i].URL = c.assetURL(created.Images[i].URL)
	}
	return &created, nil
}
