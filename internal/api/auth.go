package api

import (
	"context"
	"net/http"

	"admin-console/internal/models"
)

// Credentials is the login form payload
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token and admin profile
type LoginResponse struct {
	Token string            `json:"token"`
	User  *models.Principal `json:"user"`
}

// AuthAPI wraps the authentication endpoint
type AuthAPI struct {
	c *Client
}

// NewAuthAPI creates the auth gateway
func NewAuthAPI(c *Client) *AuthAPI {
	return &AuthAPI{c: c}
}

// Login exchanges credentials for a bearer token
func (a *AuthAPI) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	var out LoginResponse
	if err := a.c.do(ctx, http.MethodPost, pathLogin, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
