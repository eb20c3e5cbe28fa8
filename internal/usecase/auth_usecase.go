package usecase

import (
	"context"

	"github.com/golang-jwt/jwt/v4"

	"gebeya/internal/domain/entity"
	"gebeya/internal/listview"
	"gebeya/internal/session"
	"gebeya/internal/upstream"
	"gebeya/internal/wizard"
	"gebeya/pkg/errors"
	"gebeya/pkg/logger"
)

type AuthUseCase struct {
	api     *upstream.Client
	store   *session.Store
	screens *listview.Registry
	wizards *wizard.Manager
}

func NewAuthUseCase(api *upstream.Client, store *session.Store, screens *listview.Registry, wizards *wizard.Manager) *AuthUseCase {
	return &AuthUseCase{
		api:     api,
		store:   store,
		screens: screens,
		wizards: wizards,
	}
}

type LoginInput struct {
	Email    string
	Password string
	Remember bool
}

type AuthResult struct {
	Session  entity.Session
	Redirect string
}

// Login authenticates against the marketplace API and caches the identity
// in the scope chosen by remember. The acting user's ID claim is extracted
// from the token exactly once, here, and carried in the session from then on.
func (uc *AuthUseCase) Login(ctx context.Context, contextID string, input LoginInput) (*AuthResult, error) {
	result, err := uc.api.Login(ctx, upstream.LoginInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		if errors.Is(err, "UNAUTHORIZED") || errors.Is(err, "BAD_REQUEST") {
			return nil, errors.Unauthorized("Email or Password Incorrect.", err)
		}
		return nil, err
	}

	sess := sessionFromUser(&result.User, result.Token)
	uc.store.Save(contextID, sess, input.Remember)

	return &AuthResult{
		Session:  sess,
		Redirect: sess.LandingPath(),
	}, nil
}

type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
	Remember    bool
}

// Register creates the account upstream and bootstraps a session the same
// way login does.
func (uc *AuthUseCase) Register(ctx context.Context, contextID string, input RegisterInput) (*AuthResult, error) {
	result, err := uc.api.Register(ctx, upstream.RegisterInput{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Password:    input.Password,
	})
	if err != nil {
		return nil, err
	}

	sess := sessionFromUser(&result.User, result.Token)
	uc.store.Save(contextID, sess, input.Remember)

	return &AuthResult{
		Session:  sess,
		Redirect: sess.LandingPath(),
	}, nil
}

// Logout clears both storage scopes and forgets the context's live screens
// and wizard.
func (uc *AuthUseCase) Logout(contextID string) {
	uc.store.Clear(contextID)
	uc.screens.Drop(contextID)
	uc.wizards.Drop(contextID)
}

func sessionFromUser(user *upstream.UserPayload, token string) entity.Session {
	userID := user.UserID()
	if userID == "" {
		userID = userIDFromToken(token)
	}

	return entity.Session{
		UserID:          userID,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Email:           user.Email,
		PhoneNumber:     user.PhoneNumber,
		Gender:          user.Gender,
		Role:            entity.NormalizeRole(user.Role),
		ProfilePhotoURL: user.ProfilePhoto,
		Token:           token,
	}
}

// userIDFromToken reads the user identifier claim without verifying the
// signature. The gateway never trusts the token for authorization; the
// marketplace API re-validates it on every call.
func userIDFromToken(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		logger.Warn("could not parse token claims: %v", err)
		return ""
	}
	if id, ok := claims["id"].(string); ok && id != "" {
		return id
	}
	if id, ok := claims["_id"].(string); ok && id != "" {
		return id
	}
	return ""
}
