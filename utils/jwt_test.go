package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	token, err := m.Issue("a@x.com")
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, claims.IssuedAt+int64(time.Hour/time.Second), claims.ExpiresAt)
}

func TestTokenManager_Rejects(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	expired := NewTokenManager("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.Issue("a@x.com")
	require.NoError(t, err)

	foreignToken, err := NewTokenManager("other", time.Hour).Issue("a@x.com")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expiredToken},
		{"wrong secret", foreignToken},
		{"garbage", "not-a-token"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnauthorized))
			assert.Equal(t, 401, StatusFor(err))
		})
	}
}

func TestTokenManager_IssueRequiresEmail(t *testing.T) {
	_, err := NewTokenManager("secret", time.Hour).Issue("")
	assert.Error(t, err)
}
