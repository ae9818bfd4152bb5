// AngelaMos | 2026
// security_test.go

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := VerifyPassword("s3cret-pass", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	other, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other)
}

func TestVerifyLegacyBcryptRehashes(t *testing.T) {
	legacy, err := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	ok, newHash, err := VerifyPasswordWithRehash("old-pass", string(legacy))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, strings.HasPrefix(newHash, "$argon2id$"))

	ok, newHash, err = VerifyPasswordWithRehash("nope", string(legacy))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, newHash)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	_, err := VerifyPassword("x", "$argon2id$garbage")
	assert.Error(t, err)
}

func TestVerifyPasswordTimingSafe(t *testing.T) {
	ok, _, err := VerifyPasswordTimingSafe("anything", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	hash, err := HashPassword("pw")
	require.NoError(t, err)

	ok, newHash, err := VerifyPasswordTimingSafe("pw", &hash)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, newHash)
}
