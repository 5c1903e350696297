// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"raidhub/config"
	domainerrors "raidhub/internal/domain/errors"
	"raidhub/internal/domain/service"
	"raidhub/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Process-wide HMAC signing secret, immutable after startup.
	ttl    time.Duration // Lifetime of issued tokens.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		ttl:    cfg.JWT.TTL,
	}, nil
}

// Issue creates a signed token carrying the user identity.
func (s *jwtService) Issue(userID int64, lineUserID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":        strconv.FormatInt(userID, 10),
		"lineUserId": lineUserID,
		"iat":        now.Unix(),
		"exp":        now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate checks signature and expiry and extracts the embedded identity.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domainerrors.ErrTokenExpired.WrapMessage("token past expiry")
		case errors.Is(err, jwt.ErrSignatureInvalid):
			return nil, domainerrors.ErrTokenInvalid.WrapMessage("signature verification failed")
		default:
			return nil, domainerrors.ErrTokenMalformed.WrapMessage("failed to parse token structure")
		}
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("unexpected claims type")
	}

	userID, err := normalizeUserID(mapClaims["sub"])
	if err != nil {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage(err.Error())
	}

	lineUserID, _ := mapClaims["lineUserId"].(string)

	claims := &service.Claims{
		UserID:     userID,
		LineUserID: lineUserID,
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}

// normalizeUserID coerces the "sub" claim to a single integer type. Tokens
// minted by earlier versions of the system carried the user id as a JSON
// number, a 64-bit integer or a stringified integer; anything else fails
// closed.
func normalizeUserID(v any) (int64, error) {
	switch sub := v.(type) {
	case float64:
		if sub != math.Trunc(sub) {
			return 0, errors.New("user id in token is not an integer")
		}

		return int64(sub), nil
	case json.Number:
		id, err := sub.Int64()
		if err != nil {
			return 0, errors.Wrap(err, "user id in token is not an integer")
		}

		return id, nil
	case string:
		id, err := strconv.ParseInt(sub, 10, 64)
		if err != nil {
			return 0, errors.Wrap(err, "user id in token is not an integer")
		}

		return id, nil
	case int64:
		return sub, nil
	default:
		return 0, errors.New("user id missing from token")
	}
}
