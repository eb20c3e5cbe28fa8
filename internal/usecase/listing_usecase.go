package usecase

import (
	"bytes"
	"context"

	"gebeya/internal/domain/entity"
	"gebeya/internal/upstream"
	"gebeya/internal/wizard"
)

// ListingUseCase drives the multi-step submission wizard and performs the
// final multipart create-listing call.
type ListingUseCase struct {
	api     *upstream.Client
	wizards *wizard.Manager
	seller  *SellerUseCase
}

func NewListingUseCase(api *upstream.Client, wizards *wizard.Manager, seller *SellerUseCase) *ListingUseCase {
	return &ListingUseCase{
		api:     api,
		wizards: wizards,
		seller:  seller,
	}
}

func (uc *ListingUseCase) Wizard(contextID string) *wizard.Wizard {
	return uc.wizards.Get(contextID)
}

// Submit builds the multipart payload from the wizard and posts it. On
// success the wizard completes to its terminal step and the seller's
// product grid picks up the new listing; on failure the wizard stays on
// the review step with everything the seller entered intact.
func (uc *ListingUseCase) Submit(ctx context.Context, contextID string, sess *entity.Session) (*entity.Product, error) {
	w := uc.wizards.Get(contextID)

	submission, err := w.Submission()
	if err != nil {
		return nil, err
	}

	images := make([]upstream.ListingImage, len(submission.Images))
	for i, img := range submission.Images {
		images[i] = upstream.ListingImage{
			Name:        img.Name,
			ContentType: img.ContentType,
			Reader:      bytes.NewReader(img.Data),
		}
	}

	created, err := uc.api.CreateListing(ctx, sess.Token, upstream.CreateListingInput{
		Title:       submission.Title,
		Description: submission.Description,
		Category:    submission.Category,
		Price:       submission.Price,
		ContactInfo: sess.Email,
		UserID:      sess.UserID,
		Images:      images,
	})
	if err != nil {
		return nil, err
	}

	w.Complete()
	uc.seller.AppendProduct(contextID, *created)
	return created, nil
}
