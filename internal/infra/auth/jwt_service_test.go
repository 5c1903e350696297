package auth

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raidhub/config"
	domainerrors "raidhub/internal/domain/errors"
	"raidhub/internal/errors"
)

func testConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttl

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(testConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := svc.Issue(42, "U1234567890abcdef")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "U1234567890abcdef", claims.LineUserID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(testConfig("", time.Hour))
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(testConfig("test_secret_key_very_long_for_testing", -time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(42, "U1234567890abcdef")
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_WrongKey(t *testing.T) {
	issuer, err := NewJWTService(testConfig("issuer_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)
	validator, err := NewJWTService(testConfig("another_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := issuer.Issue(42, "U1234567890abcdef")
	require.NoError(t, err)

	claims, err := validator.Validate(token)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_GarbageToken(t *testing.T) {
	svc, err := NewJWTService(testConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	claims, err := svc.Validate("clearly-not-a-jwt-token")
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenMalformed))
}

// Tokens minted by older clients carried "sub" as a raw JSON number instead
// of a string; the validator accepts both.
func TestJWTService_NumericSubjectClaim(t *testing.T) {
	secret := "test_secret_key_very_long_for_testing"
	svc, err := NewJWTService(testConfig(secret, time.Hour))
	require.NoError(t, err)

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":        int64(42),
		"lineUserId": "U1234567890abcdef",
		"iat":        now.Unix(),
		"exp":        now.Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	claims, err := svc.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestNormalizeUserID(t *testing.T) {
	tests := []struct {
		name    string
		sub     any
		want    int64
		wantErr bool
	}{
		{name: "json number", sub: float64(7), want: 7},
		{name: "decoded json.Number", sub: json.Number("7"), want: 7},
		{name: "stringified integer", sub: "7", want: 7},
		{name: "int64", sub: int64(7), want: 7},
		{name: "fractional number", sub: float64(7.5), wantErr: true},
		{name: "non-numeric string", sub: "abc", wantErr: true},
		{name: "missing", sub: nil, wantErr: true},
		{name: "bool", sub: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeUserID(tt.sub)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
