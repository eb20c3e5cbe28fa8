package usecase

import (
	"context"
	"strconv"

	"gebeya/internal/domain/entity"
	"gebeya/internal/listview"
	"gebeya/internal/upstream"
)

const (
	sellerProductsScreen  = "seller:products"
	sellerProductsPerPage = 6
)

type SellerUseCase struct {
	api     *upstream.Client
	screens *listview.Registry
}

func NewSellerUseCase(api *upstream.Client, screens *listview.Registry) *SellerUseCase {
	return &SellerUseCase{
		api:     api,
		screens: screens,
	}
}

// MountProducts fetches the seller's listings and opens the screen over
// them. The search box matches category and price, the way the dashboard
// grid filters.
func (uc *SellerUseCase) MountProducts(ctx context.Context, contextID string, sess *entity.Session) (*listview.Screen[entity.Product], error) {
	products, err := uc.api.MyProducts(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []entity.Product{}
	}

	screen := listview.NewScreen(products, sellerProductsPerPage,
		func(p entity.Product) string { return p.ID },
		func(p entity.Product) []string {
			return []string{p.Category, strconv.FormatFloat(p.Price, 'f', -1, 64)}
		})
	uc.screens.Put(contextID, sellerProductsScreen, screen)
	return screen, nil
}

// Products returns the context's mounted seller screen, if any.
func (uc *SellerUseCase) Products(contextID string) (*listview.Screen[entity.Product], bool) {
	return listview.Lookup[entity.Product](uc.screens, contextID, sellerProductsScreen)
}

// AppendProduct adds a freshly created listing to the mounted screen so the
// grid reflects it without a re-fetch.
func (uc *SellerUseCase) AppendProduct(contextID string, product entity.Product) {
	screen, ok := uc.Products(contextID)
	if !ok {
		return
	}
	screen.Append(product)
}

// RatingsSummary is the seller reviews screen: every rating received plus
// the running average.
type RatingsSummary struct {
	Ratings []entity.Rating
	Average float64
}

func (uc *SellerUseCase) Ratings(ctx context.Context, sess *entity.Session) (*RatingsSummary, error) {
	ratings, err := uc.api.MyProductRatings(ctx, sess.Token)
	if err != nil {
		return nil, err
	}
	if ratings == nil {
		ratings = []entity.Rating{}
	}

	var average float64
	if len(ratings) > 0 {
		var sum float64
		for _, r := range ratings {
			sum += float64(r.Score)
		}
		average = sum / float64(len(ratings))
	}

	return &RatingsSummary{
		Ratings: ratings,
		Average: average,
	}, nil
}
