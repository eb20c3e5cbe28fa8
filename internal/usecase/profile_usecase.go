package usecase

import (
	"context"

	"gebeya/internal/domain/entity"
	"gebeya/internal/session"
	"gebeya/internal/upstream"
	"gebeya/pkg/errors"
)

type ProfileUseCase struct {
	api   *upstream.Client
	store *session.Store
}

func NewProfileUseCase(api *upstream.Client, store *session.Store) *ProfileUseCase {
	return &ProfileUseCase{
		api:   api,
		store: store,
	}
}

type UpdateProfileInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Gender      string
	Photo       *upstream.ListingImage
}

// UpdateProfile pushes the edit upstream, then merges the confirmed record
// back into the session store, which broadcasts the change to other live
// views. Only the server-confirmed photo URL is cached, never the upload.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, contextID string, sess *entity.Session, input UpdateProfileInput, admin bool) (*entity.Session, error) {
	apiInput := upstream.ProfileInput{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Gender:      input.Gender,
		Photo:       input.Photo,
	}

	var (
		updated *upstream.UserPayload
		err     error
	)
	if admin {
		updated, err = uc.api.UpdateAdminProfile(ctx, sess.Token, apiInput)
	} else {
		updated, err = uc.api.UpdateProfile(ctx, sess.Token, apiInput)
	}
	if err != nil {
		return nil, err
	}

	merged, ok := uc.store.Update(contextID, session.Partial{
		FirstName:       &updated.FirstName,
		LastName:        &updated.LastName,
		Email:           &updated.Email,
		PhoneNumber:     &updated.PhoneNumber,
		Gender:          &updated.Gender,
		ProfilePhotoURL: &updated.ProfilePhoto,
	})
	if !ok {
		return nil, errors.Unauthorized("Session expired. Please login again.", nil)
	}
	return merged, nil
}

type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

func (uc *ProfileUseCase) ChangePassword(ctx context.Context, sess *entity.Session, input ChangePasswordInput, admin bool) error {
	if input.NewPassword != input.ConfirmPassword {
		return errors.BadRequest("Passwords do not match.", nil)
	}

	apiInput := upstream.PasswordInput{
		CurrentPassword: input.CurrentPassword,
		NewPassword:     input.NewPassword,
		ConfirmPassword: input.ConfirmPassword,
	}
	if admin {
		return uc.api.ChangeAdminPassword(ctx, sess.Token, apiInput)
	}
	return uc.api.ChangePassword(ctx, sess.Token, apiInput)
}
