package auth_test

import (
	"testing"
	"time"

	"github.com/nikov/simplenote-backend/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCodec_IssueAndVerify(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret", time.Hour)

	token, err := codec.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenCodec_Verify_Rejections(t *testing.T) {
	codec := auth.NewTokenCodec("test-secret", time.Hour)

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "garbage input",
			token: func(t *testing.T) string {
				return "not-a-token"
			},
		},
		{
			name: "empty input",
			token: func(t *testing.T) string {
				return ""
			},
		},
		{
			name: "expired token with a valid signature",
			token: func(t *testing.T) string {
				expired := auth.NewTokenCodec("test-secret", -time.Hour)
				tok, err := expired.Issue("user-123")
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "token signed with a different secret",
			token: func(t *testing.T) string {
				other := auth.NewTokenCodec("other-secret", time.Hour)
				tok, err := other.Issue("user-123")
				require.NoError(t, err)
				return tok
			},
		},
		{
			name: "token without a user id",
			token: func(t *testing.T) string {
				tok, err := codec.Issue("")
				require.NoError(t, err)
				return tok
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Verify(tt.token(t))
			assert.ErrorIs(t, err, auth.ErrInvalidToken)
		})
	}
}

func TestTokenCodec_DistinctKeysAreIndependent(t *testing.T) {
	a := auth.NewTokenCodec("key-a", time.Hour)
	b := auth.NewTokenCodec("key-b", time.Hour)

	token, err := a.Issue("user-123")
	require.NoError(t, err)

	_, err = b.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
