// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"crosslink/config"
	"crosslink/internal/domain/entity"
	domainerrors "crosslink/internal/domain/errors"
	"crosslink/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	sessionSecret string        // Secret key for signing session tokens.
	sessionTTL    time.Duration // Time-to-live for session tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("jwt session secret must be provided")
	}
	return &jwtService{
		sessionSecret: cfg.SecretKey.Session,
		sessionTTL:    cfg.Link.SessionTokenTTL,
	}, nil
}

// IssueSessionToken creates a short-lived token binding an identity to its platform.
func (s *jwtService) IssueSessionToken(identity entity.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":      identity.ID.String(),               // Subject (who the token is for)
		"name":     identity.Name,                      // Display name at issue time
		"platform": string(identity.Platform),          // Platform the identity connected from
		"iat":      time.Now().Unix(),                  // Issued At
		"exp":      time.Now().Add(s.sessionTTL).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.sessionSecret))
}

// ParseSessionToken validates a session token and reconstructs the identity it was issued for.
func (s *jwtService) ParseSessionToken(tokenString string) (entity.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.sessionSecret), nil
	})
	if err != nil || !token.Valid {
		return entity.Identity{}, domainerrors.ErrSessionTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.Identity{}, domainerrors.ErrSessionTokenInvalid
	}

	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return entity.Identity{}, domainerrors.ErrSessionTokenInvalid
	}

	name, _ := claims["name"].(string)
	rawPlatform, _ := claims["platform"].(string)
	platform := entity.Platform(rawPlatform)
	if !platform.Valid() {
		return entity.Identity{}, domainerrors.ErrSessionTokenInvalid
	}

	return entity.Identity{ID: id, Name: name, Platform: platform}, nil
}
