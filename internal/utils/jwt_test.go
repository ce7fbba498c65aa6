package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-absence-keeper/models"
)

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("provider-secret"))
	require.NoError(t, err)
	return s
}

func TestIdentityFromToken(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		token   string
		want    models.Identity
		wantErr error
	}{
		{
			name: "valid",
			token: signTestToken(t, jwt.MapClaims{
				"sub":   "u1",
				"email": "a@x.test",
				"exp":   now.Add(time.Hour).Unix(),
			}),
			want: models.Identity{UserID: "u1", Email: "a@x.test"},
		},
		{
			name:  "no expiry",
			token: signTestToken(t, jwt.MapClaims{"sub": "u1", "email": "a@x.test"}),
			want:  models.Identity{UserID: "u1", Email: "a@x.test"},
		},
		{
			name: "expired",
			token: signTestToken(t, jwt.MapClaims{
				"sub":   "u1",
				"email": "a@x.test",
				"exp":   now.Add(-time.Minute).Unix(),
			}),
			wantErr: ErrIdentityTokenExpired,
		},
		{
			name:    "missing subject",
			token:   signTestToken(t, jwt.MapClaims{"email": "a@x.test"}),
			wantErr: ErrInvalidIdentityToken,
		},
		{
			name:    "missing email",
			token:   signTestToken(t, jwt.MapClaims{"sub": "u1"}),
			wantErr: ErrInvalidIdentityToken,
		},
		{
			name:    "garbage",
			token:   "not.a.jwt",
			wantErr: ErrInvalidIdentityToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IdentityFromToken(tt.token, now)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	for _, h := range []string{"", "Bearer", "Bearer ", "abc"} {
		_, err := ParseBearerToken(h)
		assert.Error(t, err, h)
	}
}
