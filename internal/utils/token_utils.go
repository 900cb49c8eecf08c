package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminRole is the role carried by every access token this service issues.
const AdminRole = "store_admin"

// ErrNotAdminToken is returned for a correctly signed token that does not carry AdminRole.
var ErrNotAdminToken = errors.New("token does not grant admin access")

// AdminClaims are the claims of an administrator access token. Subject is the admin username.
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueAdminToken signs an HS256 access token for admin and returns it with its expiry time.
func IssueAdminToken(admin, secret string, ttl time.Duration, issuer string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := AdminClaims{
		Role: AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   admin,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAdminToken checks the signature, the time claims and the role of an access token.
// Only HS256 is accepted.
func ParseAdminToken(tokenString, secret string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuedAt())
	if err != nil {
		return nil, err
	}
	if claims.Role != AdminRole {
		return nil, ErrNotAdminToken
	}
	return claims, nil
}
