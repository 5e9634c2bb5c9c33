package auth

import (
	"testing"
	"time"

	"safezone/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.SecretKey.TokenTTL = ttl

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := jwtService.GenerateToken("user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, time.Hour, jwtService.TokenDuration())
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig("test_access_secret_key_very_long_for_testing", 0))
	require.NoError(t, err)

	assert.Equal(t, defaultTokenTTL, jwtService.TokenDuration())

	_, err = jwtService.ValidateToken("not-a-jwt")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testConfig("secret-one", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(testConfig("secret-two", time.Hour))
	require.NoError(t, err)

	token, err := issuer.GenerateToken("user-1")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testConfig("secret", time.Minute))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	token, err := svc.GenerateToken("user-1")
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTService_RejectsOtherSigningMethod(t *testing.T) {
	svc, err := NewJWTService(testConfig("secret", time.Hour))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject: "user-1",
		Issuer:  tokenIssuer,
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(unsigned)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(testConfig("", time.Hour))
	assert.Error(t, err)
}

func TestJWTService_GenerateToken_EmptyUser(t *testing.T) {
	svc, err := NewJWTService(testConfig("secret", time.Hour))
	require.NoError(t, err)

	_, err = svc.GenerateToken("")
	assert.Error(t, err)
}
