package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "asknow-test"
	testSignKey = "test-sign-key"
)

// TestGenerateJWTToken_RoundTrip verifies that a generated token validates
// and yields the original user ID.
func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

// TestGenerateJWTToken_InvalidParams verifies that empty issuer, zero
// duration, or empty key are all rejected.
func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, duration: 0, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.signKey)
			assert.Error(t, err)
		})
	}
}

// TestValidateAndParseJWTToken_TamperedToken verifies that flipping a single
// bit anywhere in the signed token makes validation fail instead of
// resolving to any user.
func TestValidateAndParseJWTToken_TamperedToken(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 7, time.Hour, testSignKey)
	require.NoError(t, err)

	raw := []byte(token.SignedString)
	for i := 0; i < len(raw); i += 7 {
		tampered := make([]byte, len(raw))
		copy(tampered, raw)
		tampered[i] ^= 0x01

		_, err := ValidateAndParseJWTToken(string(tampered), testSignKey, testIssuer)
		assert.Error(t, err, "bit flip at offset %d must not validate", i)
	}
}

// TestValidateAndParseJWTToken_WrongIssuer verifies that a token issued by a
// different issuer is rejected.
func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, err := GenerateJWTToken("someone-else", 7, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}

// TestValidateAndParseJWTToken_Expired verifies that an expired token is rejected.
func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 7, time.Nanosecond, testSignKey)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	assert.Error(t, err)
}
