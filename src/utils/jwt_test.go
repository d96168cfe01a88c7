package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "admin@example.com", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseJWTRejectsGarbage(t *testing.T) {
	_, err := ParseJWT("")
	assert.Error(t, err)

	_, err = ParseJWT("not.a.token")
	assert.Error(t, err)
}

func TestGenerateRandomStringLength(t *testing.T) {
	for _, n := range []int{1, 7, 8, 16} {
		s := GenerateRandomString(n)
		assert.Len(t, s, n)
	}

	// Codes for two employees should not collide.
	assert.NotEqual(t, GenerateRandomString(16), GenerateRandomString(16))
}
