package auth

import (
	"testing"
	"time"

	"crosslink/config"
	"crosslink/internal/domain/entity"
	domainerrors "crosslink/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Session = secret
	cfg.Link.SessionTokenTTL = 15 * time.Minute
	return cfg
}

func TestJWTService_IssueAndParseSessionToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_session_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	identity := entity.Identity{
		ID:       uuid.New(),
		Name:     "Steve",
		Platform: entity.PlatformPC,
	}

	token, err := jwtService.IssueSessionToken(identity)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	parsed, err := jwtService.ParseSessionToken(token)
	assert.NoError(t, err)
	assert.Equal(t, identity.ID, parsed.ID)
	assert.Equal(t, identity.Name, parsed.Name)
	assert.Equal(t, entity.PlatformPC, parsed.Platform)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_session_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	// Clearly non-JWT format
	_, err = jwtService.ParseSessionToken("clearly-not-a-jwt-token-format")
	assert.ErrorIs(t, err, domainerrors.ErrSessionTokenInvalid)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig("issuer_secret_key_very_long_for_testing"))
	assert.NoError(t, err)
	verifier, err := NewJWTService(testConfig("different_secret_key_very_long_for_testing"))
	assert.NoError(t, err)

	token, err := issuer.IssueSessionToken(entity.Identity{
		ID:       uuid.New(),
		Name:     "Alex",
		Platform: entity.PlatformConsole,
	})
	assert.NoError(t, err)

	_, err = verifier.ParseSessionToken(token)
	assert.ErrorIs(t, err, domainerrors.ErrSessionTokenInvalid)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt session secret must be provided")
}
