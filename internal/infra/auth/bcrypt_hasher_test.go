package auth

import (
	"testing"

	"greenmarket/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			MaxLength:        72,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := newTestHasher()

	hash, err := hasher.Hash("Test123!@#")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Test123!@#", hash)

	assert.True(t, hasher.Check("Test123!@#", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("Test123!@#")
	require.NoError(t, err)
	second, err := hasher.Hash("Test123!@#")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	tests := []struct {
		name       string
		password   string
		violations int
	}{
		{name: "strong password passes", password: "Test123!@#", violations: 0},
		{name: "too short", password: "Te1!", violations: 1},
		{name: "missing uppercase", password: "test123!@#", violations: 1},
		{name: "missing lowercase", password: "TEST123!@#", violations: 1},
		{name: "missing digit", password: "TestTest!@#", violations: 1},
		{name: "missing symbol", password: "TestTest123", violations: 1},
		{name: "all rules violated at once", password: "", violations: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, hasher.ValidatePasswordStrength(tt.password), tt.violations)
		})
	}
}

func TestBcryptHasher_OutOfRangeCostFallsBack(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}
	hasher := NewBcryptHasher(cfg).(*bcryptHasher)

	hash, err := hasher.Hash("Test123!@#")
	require.NoError(t, err)
	assert.True(t, hasher.Check("Test123!@#", hash))
}
