package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jd6186/interview-assignments/domain"
)

// JWTServiceImpl implements domain.TokenService with HS256-signed tokens.
// Verification is stateless: the secret and the clock are the only inputs,
// so Decode is safe to call concurrently with no locking.
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	tokenTTL  time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey, issuer string, tokenTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		tokenTTL:  tokenTTL,
	}
}

// Issue implements domain.TokenService. The subject is the user id and the
// expiry is now plus the configured validity window.
func (j *JWTServiceImpl) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		Issuer:    j.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// Decode implements domain.TokenService. Expired tokens fail with
// ErrTokenExpired even when the signature verifies; unparseable tokens fail
// with ErrTokenMalformed; everything else, bad signatures included, fails
// with ErrTokenInvalid.
func (j *JWTServiceImpl) Decode(tokenString string) (uint, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenInvalid
		}
		return j.secretKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return 0, domain.ErrTokenMalformed
		default:
			return 0, domain.ErrTokenInvalid
		}
	}
	if !token.Valid {
		return 0, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, domain.ErrTokenMalformed
	}
	userID, err := strconv.ParseUint(claims.Subject, 10, 32)
	if err != nil {
		return 0, domain.ErrTokenMalformed
	}
	return uint(userID), nil
}
