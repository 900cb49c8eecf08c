package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/dual_currency_display/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenSecret = "test-secret-key-that-is-long-enough"

func TestIssueAndParseAdminToken(t *testing.T) {
	token, expiresAt, err := utils.IssueAdminToken("admin", tokenSecret, time.Hour, "dcd-test")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := utils.ParseAdminToken(token, tokenSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "dcd-test", claims.Issuer)
	assert.Equal(t, utils.AdminRole, claims.Role)
}

func TestParseAdminToken_Rejects(t *testing.T) {
	expired, _, err := utils.IssueAdminToken("admin", tokenSecret, -time.Minute, "dcd-test")
	require.NoError(t, err)
	foreign, _, err := utils.IssueAdminToken("admin", "another-secret", time.Hour, "dcd-test")
	require.NoError(t, err)
	roleless, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "admin"}).
		SignedString([]byte(tokenSecret))
	require.NoError(t, err)
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, utils.AdminClaims{Role: utils.AdminRole}).
		SignedString([]byte(tokenSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"expired", expired, jwt.ErrTokenExpired},
		{"wrong secret", foreign, jwt.ErrTokenSignatureInvalid},
		{"no admin role", roleless, utils.ErrNotAdminToken},
		{"other signing method", hs512, jwt.ErrTokenSignatureInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := utils.ParseAdminToken(tt.token, tokenSecret)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAdminPassword(t *testing.T) {
	hash, err := utils.HashAdminPassword("s3cret")
	require.NoError(t, err)

	ok, err := utils.CheckAdminPassword("s3cret", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = utils.CheckAdminPassword("nope", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = utils.CheckAdminPassword("s3cret", "plain-text")
	assert.Error(t, err)

	_, err = utils.HashAdminPassword("")
	assert.Error(t, err)
}
