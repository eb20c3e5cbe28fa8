package usecase

import (
	"context"
	"encoding/json"
	"os"

	"gebeya/internal/domain/entity"
	"gebeya/internal/listview"
	"gebeya/internal/upstream"
	"gebeya/pkg/errors"
	"gebeya/pkg/logger"
)

const (
	relatedProductLimit = 4
	videosPerPage       = 8
)

type CatalogUseCase struct {
	api    *upstream.Client
	videos []entity.LearningVideo
}

func NewCatalogUseCase(api *upstream.Client, videosPath string) *CatalogUseCase {
	return &CatalogUseCase{
		api:    api,
		videos: loadVideos(videosPath),
	}
}

// Storefront is the public catalog, optionally narrowed by category slug.
func (uc *CatalogUseCase) Storefront(ctx context.Context) ([]entity.Product, error) {
	products, err := uc.api.ListProducts(ctx, "")
	if err != nil {
		return nil, err
	}
	return products, nil
}

// Category resolves a URL slug and lists its products. An unknown slug is a
// not-found domain state, not an error.
func (uc *CatalogUseCase) Category(ctx context.Context, slug string) (string, []entity.Product, error) {
	category, ok := entity.CategoryFromSlug(slug)
	if !ok {
		return "", nil, errors.NotFound("Category", nil)
	}

	products, err := uc.api.ListProducts(ctx, category)
	if err != nil {
		return "", nil, err
	}
	return category, products, nil
}

// ProductDetail is what the detail screen renders: the product, its
// reviews, and up to four related items from the same category fetch, in
// original order.
type ProductDetail struct {
	Product       entity.Product
	AverageRating float64
	Related       []entity.Product
}

// Detail locates the product inside its category collection; the API has
// no single-item endpoint. A failed fetch or a missing ID both surface as
// the not-found state, matching the storefront this replaces.
func (uc *CatalogUseCase) Detail(ctx context.Context, categoryName, productID string) (*ProductDetail, error) {
	products, err := uc.api.ListProducts(ctx, categoryName)
	if err != nil {
		return nil, errors.NotFound("Product", err)
	}

	var found *entity.Product
	for i := range products {
		if products[i].ID == productID {
			found = &products[i]
			break
		}
	}
	if found == nil {
		return nil, errors.NotFound("Product", nil)
	}

	related := make([]entity.Product, 0, relatedProductLimit)
	for _, p := range products {
		if p.ID == productID {
			continue
		}
		related = append(related, p)
		if len(related) == relatedProductLimit {
			break
		}
	}

	return &ProductDetail{
		Product:       *found,
		AverageRating: found.AverageRating(),
		Related:       related,
	}, nil
}

type AddRatingInput struct {
	ProductID string
	Score     int
	Comment   string
}

// AddRating submits a review on behalf of the signed-in user. The caller
// appends the returned rating to its local view instead of re-fetching.
func (uc *CatalogUseCase) AddRating(ctx context.Context, sess *entity.Session, input AddRatingInput) (*entity.Rating, error) {
	if sess.UserID == "" {
		return nil, errors.Unauthorized("Invalid token: user ID not found.", nil)
	}

	rating, err := uc.api.AddRating(ctx, sess.Token, upstream.AddRatingInput{
		ProductID: input.ProductID,
		UserID:    sess.UserID,
		Score:     input.Score,
		Comment:   input.Comment,
		FullName:  sess.FullName(),
	})
	if err != nil {
		return nil, err
	}
	if rating.Author == "" {
		rating.Author = sess.FullName()
	}
	return rating, nil
}

// Videos pages through the static tutorial catalog.
func (uc *CatalogUseCase) Videos(page int) listview.PageView[entity.LearningVideo] {
	return listview.Paginate(uc.videos, page, videosPerPage)
}

// WrapIndex advances a carousel position with wraparound in either
// direction; n is the image count.
func WrapIndex(current, delta, n int) int {
	if n <= 0 {
		return 0
	}
	i := (current + delta) % n
	if i < 0 {
		i += n
	}
	return i
}

func loadVideos(path string) []entity.LearningVideo {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("learning videos catalog unavailable: %v", err)
		return nil
	}
	var videos []entity.LearningVideo
	if err := json.Unmarshal(data, &videos); err != nil {
		logger.Warn("learning videos catalog malformed: %v", err)
		return nil
	}
	return videos
}
