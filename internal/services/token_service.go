package services

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"

	"core-banking-statements/internal/config"
	"core-banking-statements/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// TokenService verifies RS256 tokens against the configured public key.
type TokenService struct {
	publicKey *rsa.PublicKey
	issuer    string
}

func NewTokenService(jwtConfig *config.JWTConfig) TokenVerifierInterface {
	return &TokenService{
		publicKey: jwtConfig.PublicKey,
		issuer:    jwtConfig.Issuer,
	}
}

// ValidateAccessToken checks signature, expiry and issuer and returns the claims.
func (ts *TokenService) ValidateAccessToken(tokenString string) (*models.OperatorClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.OperatorClaims{}, ts.keyFunc)
	if err != nil {
		return nil, ts.mapTokenError(err)
	}

	claims, ok := token.Claims.(*models.OperatorClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if ts.issuer != "" && claims.Issuer != ts.issuer {
		return nil, ErrInvalidIssuer
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts the JWT from a "Bearer <token>" header.
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

func (ts *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return ts.publicKey, nil
}

func (ts *TokenService) mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}
