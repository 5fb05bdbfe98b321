package totp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Base32 encoding of the RFC 4226 / RFC 6238 reference secret
// "12345678901234567890".
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

// ── Code generation ──

func TestGenerateCode_RFCVector(t *testing.T) {
	got, err := GenerateCode(rfcSecret, time.Unix(59, 0))
	require.NoError(t, err)

	// RFC 6238 SHA-1 vector at T=59 is 94287082, truncated to six digits.
	assert.Equal(t, "287082", got.Code)
	assert.Equal(t, uint(30), got.Period)
	assert.Equal(t, time.Unix(59, 0), got.IssuedAt)
	assert.Equal(t, time.Unix(60, 0).UTC(), got.ExpiresAt)
}

func TestGenerateCode_StableWithinPeriod(t *testing.T) {
	first, err := GenerateCode(rfcSecret, time.Unix(30, 0))
	require.NoError(t, err)
	last, err := GenerateCode(rfcSecret, time.Unix(59, 0))
	require.NoError(t, err)
	next, err := GenerateCode(rfcSecret, time.Unix(60, 0))
	require.NoError(t, err)

	assert.Equal(t, first.Code, last.Code)
	assert.NotEqual(t, last.Code, next.Code)

	// the boundary itself belongs to the next period
	assert.Equal(t, time.Unix(60, 0).UTC(), last.ExpiresAt)
	assert.Equal(t, time.Unix(90, 0).UTC(), next.ExpiresAt)
}

func TestGenerateCode_NormalizesBareSecret(t *testing.T) {
	canonical, err := GenerateCode(rfcSecret, time.Unix(59, 0))
	require.NoError(t, err)

	sloppy, err := GenerateCode("gezd gnbv gy3t qojq gezd gnbv gy3t qojq", time.Unix(59, 0))
	require.NoError(t, err)

	assert.Equal(t, canonical.Code, sloppy.Code)
}

func TestGenerateCode_OtpauthURI(t *testing.T) {
	uri := "otpauth://totp/ACME:jane@example.com?secret=" + rfcSecret +
		"&issuer=ACME&period=60&digits=8&algorithm=SHA1"

	got, err := GenerateCode(uri, time.Unix(59, 0))
	require.NoError(t, err)

	// period 60 at T=59 is counter 0: RFC 4226 vector 1284755224,
	// truncated to eight digits.
	assert.Equal(t, "84755224", got.Code)
	assert.Equal(t, uint(60), got.Period)
	assert.Equal(t, time.Unix(60, 0).UTC(), got.ExpiresAt)
}

func TestGenerateCode_InvalidSeeds(t *testing.T) {
	tests := []struct {
		name string
		seed string
	}{
		{name: "empty", seed: ""},
		{name: "blank", seed: "   "},
		{name: "uri without secret", seed: "otpauth://totp/ACME:jane?period=30"},
		{name: "zero period", seed: "otpauth://totp/a?secret=" + rfcSecret + "&period=0"},
		{name: "bad digits", seed: "otpauth://totp/a?secret=" + rfcSecret + "&digits=9"},
		{name: "unknown algorithm", seed: "otpauth://totp/a?secret=" + rfcSecret + "&algorithm=MD5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateCode(tt.seed, time.Unix(59, 0))
			assert.Error(t, err)
		})
	}
}
