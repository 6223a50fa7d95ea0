package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "fitsense"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

type AuthClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// IssueAuthToken signs an HS256 bearer token for userID.
func IssueAuthToken(secret []byte, userID uint, ttl time.Duration, now time.Time) (string, error) {
	if userID == 0 {
		return "", errors.New("user id is required")
	}
	if ttl <= 0 {
		return "", errors.New("token ttl must be positive")
	}
	tokenID, err := newTokenID()
	if err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}

	claims := AuthClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseAuthToken accepts only HMAC-signed tokens carrying an expiry and a
// non-zero uid.
func ParseAuthToken(secret []byte, raw string) (AuthClaims, error) {
	claims := AuthClaims{}
	token, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithExpirationRequired())
	if errors.Is(err, jwt.ErrTokenExpired) {
		return AuthClaims{}, ErrTokenExpired
	}
	if err != nil || !token.Valid {
		return AuthClaims{}, ErrInvalidToken
	}
	if claims.UserID == 0 {
		return AuthClaims{}, ErrInvalidToken
	}
	return claims, nil
}
