package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/salepoint/salepoint-api/pkg/apperror"
	"github.com/salepoint/salepoint-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService opens operator sessions on the terminal. A single configured
// PIN gates the sale workflow; tokens carry the terminal's identity.
type AuthService struct {
	jwtManager *utils.JWTManager
	pinHash    []byte
	terminalID uuid.UUID
}

// NewAuthService creates an auth service for the given operator PIN.
func NewAuthService(jwtManager *utils.JWTManager, operatorPIN string) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(operatorPIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash operator PIN: %w", err)
	}
	return &AuthService{
		jwtManager: jwtManager,
		pinHash:    hash,
		terminalID: uuid.New(),
	}, nil
}

// TokenPair carries a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Login verifies the operator PIN and issues a token pair.
func (s *AuthService) Login(pin string) (*TokenPair, error) {
	if err := bcrypt.CompareHashAndPassword(s.pinHash, []byte(pin)); err != nil {
		return nil, apperror.ErrInvalidPIN
	}

	access, err := s.jwtManager.GenerateAccessToken(s.terminalID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(s.terminalID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	terminalID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", apperror.ErrInvalidToken
	}
	return s.jwtManager.GenerateAccessToken(terminalID)
}
