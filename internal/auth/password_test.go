package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hashed, err := HashPassword("admin123")
	require.NoError(t, err)

	parts := strings.Split(hashed, ".")
	require.Len(t, parts, 2, "stored format is hexdigest.hexsalt")

	assert.True(t, CheckPassword("admin123", hashed))
	assert.False(t, CheckPassword("admin124", hashed))
	assert.False(t, CheckPassword("", hashed))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("same password")
	require.NoError(t, err)
	second, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("same password", first))
	assert.True(t, CheckPassword("same password", second))
}

func TestCheckPassword_KnownSeedHash(t *testing.T) {
	// The demo admin seed carries this exact value for "admin123".
	stored := "dd12dff51e73ab3bc5230c6e78fbdd4f4c493f6cc5a7a127e8b0a5ade1a06aabf59ce7da9bfd2792027e5e43a9f9cd4bf3c2f6e54ef871c4c713e7662bf362df.b1a5ab3849e07ec2b0ecc9a3de50829d"
	assert.True(t, CheckPassword("admin123", stored))
	assert.False(t, CheckPassword("admin1234", stored))
}

func TestCheckPassword_MalformedStoredValue(t *testing.T) {
	// Values that are not hexdigest.hexsalt never verify; this covers
	// the second demo admin, whose seed stores a bcrypt-style string.
	cases := []string{
		"",
		"plaintext",
		"$2a$10$XWiOkTZsQVJFfMu/2X1kAOlVY6NXeIA.jd3fqXS05cGVvHn/NCL4K",
		"deadbeef.nothex",
		"nothex.deadbeef",
		"deadbeef.deadbeef.deadbeef",
	}
	for _, stored := range cases {
		assert.False(t, CheckPassword("admin123", stored), "stored=%q", stored)
	}
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long enough"))
}
