package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gebeya/internal/adapter/api/middleware"
	"gebeya/internal/domain/entity"
	"gebeya/internal/usecase"
	"gebeya/pkg/response"
	"gebeya/pkg/utils"
)

type CatalogHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewCatalogHandler(catalogUseCase *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{
		catalogUseCase: catalogUseCase,
	}
}

// productCard is the storefront grid cell.
type productCard struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Price         float64 `json:"price"`
	Category      string  `json:"category"`
	Image         string  `json:"image,omitempty"`
	AverageRating float64 `json:"averageRating"`
	ReviewCount   int     `json:"reviewCount"`
}

func cardFromProduct(p entity.Product) productCard {
	card := productCard{
		ID:            p.ID,
		Title:         p.Title,
		Price:         p.Price,
		Category:      p.Category,
		AverageRating: p.AverageRating(),
		ReviewCount:   len(p.Ratings),
	}
	if len(p.Images) > 0 {
		card.Image = p.Images[0].URL
	}
	return card
}

func cardsFromProducts(products []entity.Product) []productCard {
	cards := make([]productCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, cardFromProduct(p))
	}
	return cards
}

// Storefront renders the home catalog. An empty catalog is a valid empty
// state, not an error.
func (h *CatalogHandler) Storefront(c echo.Context) error {
	products, err := h.catalogUseCase.Storefront(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"nav":        navFor(c),
		"products":   cardsFromProducts(products),
		"categories": entity.Categories,
	})
}

func (h *CatalogHandler) Category(c echo.Context) error {
	category, products, err := h.catalogUseCase.Category(c.Request().Context(), c.Param("categorySlug"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"nav":      navFor(c),
		"category": category,
		"products": cardsFromProducts(products),
	})
}

// Detail renders one product with its reviews and related items.
func (h *CatalogHandler) Detail(c echo.Context) error {
	detail, err := h.catalogUseCase.Detail(c.Request().Context(), c.Param("categoryName"), c.Param("productId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"product":       detail.Product,
		"sellerName":    detail.Product.SellerName(),
		"averageRating": detail.AverageRating,
		"reviews":       nonNilRatings(detail.Product.Ratings),
		"related":       cardsFromProducts(detail.Related),
	})
}

type addRatingRequest struct {
	Score   int    `json:"score" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// AddRating submits a review for the signed-in user; the response carries
// the created rating for the caller's optimistic append.
func (h *CatalogHandler) AddRating(c echo.Context) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return response.RedirectToLogin(c)
	}

	var req addRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	rating, err := h.catalogUseCase.AddRating(c.Request().Context(), sess, usecase.AddRatingInput{
		ProductID: c.Param("productId"),
		Score:     req.Score,
		Comment:   req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, map[string]interface{}{"rating": rating})
}

// Videos pages through the learning catalog, 8 per page.
func (h *CatalogHandler) Videos(c echo.Context) error {
	query := utils.GetListQuery(c)
	page := h.catalogUseCase.Videos(query.Page)
	return response.Paginated(c, page.Items, page.Total, page.Page, page.PageSize, page.TotalPages)
}

// InfoPage serves the static storefront pages by name.
func (h *CatalogHandler) InfoPage(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return response.Success(c, map[string]interface{}{
			"nav":  navFor(c),
			"page": name,
		})
	}
}

// NotFound is the generic sub-page fallback: a dedicated state, never a
// crash or a blank render.
func NotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{
		"view":    "not-found",
		"message": "404 - Page Not Found",
	})
}

func nonNilRatings(ratings []entity.Rating) []entity.Rating {
	if ratings == nil {
		return []entity.Rating{}
	}
	return ratings
}
