package services

import "context"

// GoogleAuthSvcFacade defines the Google sign-in flow: exchanging the
// authorization code sent by the frontend and validating the resulting ID
// token.
type GoogleAuthSvcFacade interface {
	// ExchangeCode exchanges an authorization code and returns the verified
	// name and email from the Google ID token.
	ExchangeCode(ctx context.Context, code string) (name, email string, err error)
}
