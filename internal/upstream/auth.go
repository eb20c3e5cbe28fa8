package upstream

import (
	"context"
	"net/http"
)

// UserPayload is the user object the auth and profile endpoints return.
// Some endpoints key the identifier as "_id", others as "id".
type UserPayload struct {
	ID           string `json:"_id"`
	AltID        string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	Gender       string `json:"gender"`
	Role         string `json:"role"`
	ProfilePhoto string `json:"profilePhoto"`
	IsActive     bool   `json:"isActive"`
}

func (u *UserPayload) UserID() string {
	if u.ID != "" {
		return u.ID
	}
	return u.AltID
}

type AuthResult struct {
	Token string      `json:"token"`
	User  UserPayload `json:"user"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	var result AuthResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", "", input, &result); err != nil {
		return nil, err
	}
	result.User.ProfilePhoto = c.assetURL(result.User.ProfilePhoto)
	return &result, nil
}

type RegisterInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

func (c *Client) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	var result AuthResult
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/register", "", input, &result); err != nil {
		return nil, err
	}
	result.User.ProfilePhoto = c.assetURL(result.User.ProfilePhoto)
	return &result, nil
}
