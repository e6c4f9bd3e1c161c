package services

import (
	"fmt"
	"time"

	"gallery/internal/apperror"

	"github.com/dgrijalva/jwt-go"
)

// TokenService issues and validates the signed bearer tokens that gate the
// catalog API. The signing secret is injected at construction so tests can
// supply deterministic secrets; it is never rotated at runtime.
type TokenService struct {
	secret     []byte
	tokenDurat time.Duration // Duration for which a token is valid
}

// NewTokenService creates a new TokenService.
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		tokenDurat: 24 * time.Hour, // Token valid for 24 hours
	}
}

// Issue produces a signed HS256 token asserting the given username, with
// issued-at and expiry claims. No state is kept; two tokens for the same
// username are independent.
func (s *TokenService) Issue(username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenDurat).Unix(),
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperror.New(apperror.Infrastructure, "failed to sign token", err)
	}
	return tokenString, nil
}

// Validate checks signature and expiry together and returns the asserted
// username. Every failure mode collapses into the same invalid-token error;
// callers never learn whether the token was tampered, malformed, or expired.
func (s *TokenService) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", apperror.New(apperror.Forbidden, "invalid or expired token", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", apperror.Newf(apperror.Forbidden, "invalid or expired token")
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", apperror.Newf(apperror.Forbidden, "invalid or expired token")
	}
	return username, nil
}
