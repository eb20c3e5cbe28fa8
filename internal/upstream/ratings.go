package upstream

import (
	"context"
	"net/http"

	"gebeya/internal/domain/entity"
)

type AddRatingInput struct {
	ProductID string `json:"productId"`
	UserID    string `json:"userId"`
	Score     int    `json:"score"`
	Comment   string `json:"comment"`
	FullName  string `json:"fullName"`
}

type addRatingPayload struct {
	Rating entity.Rating `json:"rating"`
}

// AddRating submits a review for a product. Ratings are immutable once
// created; there is no edit or delete endpoint.
func (c *Client) AddRating(ctx context.Context, token string, input AddRatingInput) (*entity.Rating, error) {
	var payload addRatingPayload
	if err := c.doJSON(ctx, http.MethodPost, "/api/ratings/add", token, input, &payload); err != nil {
		return nil, err
	}
	rating := payload.Rating
	return &rating, nil
}
