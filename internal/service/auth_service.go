package service

import (
	"context"
	"regexp"

	"admin-console/internal/api"
	"admin-console/internal/session"
	"admin-console/internal/util"

	"go.uber.org/zap"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService sequences login/logout against the session store
type AuthService struct {
	api     *api.AuthAPI
	session *session.Store
	logger  *zap.Logger
}

// NewAuthService creates the auth orchestrator
func NewAuthService(authAPI *api.AuthAPI, sessionStore *session.Store) *AuthService {
	return &AuthService{
		api:     authAPI,
		session: sessionStore,
		logger:  util.GetLogger(),
	}
}

// Login validates the form, exchanges credentials for a token and persists
// the session. On failure the session state is left untouched.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	ctx, span := util.StartSpan(ctx, "AuthService.Login")
	defer span.End()

	if email == "" || password == "" {
		return &ValidationError{Message: "email and password are required"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Field: "email", Message: "not a valid email address"}
	}

	util.LoginAttemptsTotal.Inc()

	resp, err := s.api.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		util.LoginFailuresTotal.Inc()
		s.logger.Warn("Login failed", zap.String("email", email), zap.Error(err))
		return &AuthError{cause: err}
	}

	if err := s.session.Establish(resp.Token, resp.User); err != nil {
		s.logger.Error("Failed to persist session", zap.Error(err))
		return err
	}

	s.logger.Info("Logged in", zap.String("email", email))
	return nil
}

// Logout clears the session synchronously; no network call is made
func (s *AuthService) Logout() error {
	s.logger.Info("Logging out")
	return s.session.Clear()
}
