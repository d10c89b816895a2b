package services

import (
	"context"
	"fmt"

	"github.com/financeira-app/gf_backend/internal/apperrors"
	portssvc "github.com/financeira-app/gf_backend/internal/core/ports/services"
	"github.com/financeira-app/gf_backend/internal/platform/config"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// googleAuthService implements the GoogleAuthSvcFacade using the standard
// authorization-code flow: the frontend sends the code, the backend exchanges
// it and validates the returned ID token against our client ID.
type googleAuthService struct {
	BaseService
	oauthConfig *oauth2.Config
}

// NewGoogleAuthService creates a new Google auth service from configuration.
func NewGoogleAuthService(cfg *config.Config) portssvc.GoogleAuthSvcFacade {
	return &googleAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// Ensure googleAuthService implements the GoogleAuthSvcFacade interface
var _ portssvc.GoogleAuthSvcFacade = (*googleAuthService)(nil)

func (s *googleAuthService) ExchangeCode(ctx context.Context, code string) (string, string, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return "", "", fmt.Errorf("%w: failed to exchange authorization code: %v", apperrors.ErrUnauthorized, err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return "", "", fmt.Errorf("%w: no id_token in token response", apperrors.ErrUnauthorized)
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.oauthConfig.ClientID)
	if err != nil {
		return "", "", fmt.Errorf("%w: id token validation failed: %v", apperrors.ErrUnauthorized, err)
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return "", "", fmt.Errorf("%w: id token carries no email claim", apperrors.ErrUnauthorized)
	}
	if name == "" {
		name = email
	}

	return name, email, nil
}
