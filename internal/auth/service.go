package auth

import (
	"context"

	"github.com/gatehouse/gatehouse/internal/identity"
)

// Service orchestrates login: credential verification delegated to the
// identity service, then token issuance.
type Service struct {
	ids    *identity.Service
	issuer *Issuer
}

// NewService creates a new auth service.
func NewService(ids *identity.Service, issuer *Issuer) *Service {
	return &Service{ids: ids, issuer: issuer}
}

// TokenResponse is the login success payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Login verifies the credentials and issues a signed token carrying the
// user's id. Nothing is persisted; login is read-only against the store.
func (s *Service) Login(ctx context.Context, creds identity.Credentials) (TokenResponse, error) {
	user, err := s.ids.Authenticate(ctx, creds)
	if err != nil {
		return TokenResponse{}, err
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return TokenResponse{}, err
	}

	return TokenResponse{AccessToken: token}, nil
}
