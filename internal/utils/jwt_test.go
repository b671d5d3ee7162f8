package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "sga-server"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		username string
		userID   int64
		duration time.Duration
		signKey  string
		wantErr  bool
	}{
		{
			name:     "valid params",
			issuer:   testIssuer,
			username: "john",
			userID:   1,
			duration: time.Hour,
			signKey:  testSignKey,
			wantErr:  false,
		},
		{
			name:     "empty issuer",
			issuer:   "",
			username: "john",
			userID:   1,
			duration: time.Hour,
			signKey:  testSignKey,
			wantErr:  true,
		},
		{
			name:     "empty username",
			issuer:   testIssuer,
			username: "",
			userID:   1,
			duration: time.Hour,
			signKey:  testSignKey,
			wantErr:  true,
		},
		{
			name:     "zero duration",
			issuer:   testIssuer,
			username: "john",
			userID:   1,
			duration: 0,
			signKey:  testSignKey,
			wantErr:  true,
		},
		{
			name:     "empty sign key",
			issuer:   testIssuer,
			username: "john",
			userID:   1,
			duration: time.Hour,
			signKey:  "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateJWTToken(tt.issuer, tt.username, tt.userID, tt.duration, tt.signKey)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token.SignedString)
			assert.Equal(t, tt.username, token.Username)
			assert.Equal(t, tt.userID, token.UserID)
		})
	}
}

func TestValidateAndParseJWTToken(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		generated, err := GenerateJWTToken(testIssuer, "john", 42, time.Hour, testSignKey)
		require.NoError(t, err)

		parsed, err := ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)
		require.NoError(t, err)
		assert.Equal(t, "john", parsed.Username)
		assert.Equal(t, int64(42), parsed.UserID)
	})

	t.Run("wrong sign key", func(t *testing.T) {
		generated, err := GenerateJWTToken(testIssuer, "john", 42, time.Hour, testSignKey)
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(generated.SignedString, "another-key", testIssuer)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		generated, err := GenerateJWTToken("someone-else", "john", 42, time.Hour, testSignKey)
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		generated, err := GenerateJWTToken(testIssuer, "john", 42, time.Nanosecond, testSignKey)
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)

		_, err = ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)
		assert.Error(t, err)
	})

	t.Run("tampered token", func(t *testing.T) {
		generated, err := GenerateJWTToken(testIssuer, "john", 42, time.Hour, testSignKey)
		require.NoError(t, err)

		tampered := generated.SignedString[:len(generated.SignedString)-2] + "xx"
		_, err = ValidateAndParseJWTToken(tampered, testSignKey, testIssuer)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer)
		assert.Error(t, err)
	})
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "missing token", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "empty header", header: "", wantErr: ErrInvalidAuthorizationHeader},
		{name: "trailing space", header: "Bearer ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
