package auth

import (
	"strings"
	"testing"

	"blog/config"
	domainerrors "blog/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	// Verify the hash can be checked
	assert.True(t, hasher.Check("secret123", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret123", first))
	assert.True(t, hasher.Check("secret123", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.True(t, hasher.Check("secret123", hash))
	assert.False(t, hasher.Check("wrong", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("secret123", "invalid_hash"))
	assert.False(t, hasher.Check("secret123", ""))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost + 1}}
	hasher := NewBcryptHasher(cfg)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)
}

func TestBcryptHasher_InvalidCostFallsBackToDefault(t *testing.T) {
	h := newBcryptHasher(99, config.PasswordStrengthConfig{})
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
	assert.Equal(t, bcryptMaxInput, h.policy.MaxLength)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		policy   config.PasswordStrengthConfig
		password string
		wantErr  bool
	}{
		{
			name:     "default policy accepts plain password",
			policy:   config.PasswordStrengthConfig{MinLength: 8},
			password: "secret123",
		},
		{
			name:     "too short",
			policy:   config.PasswordStrengthConfig{MinLength: 8},
			password: "abc",
			wantErr:  true,
		},
		{
			name:     "longer than bcrypt input",
			policy:   config.PasswordStrengthConfig{MinLength: 8},
			password: strings.Repeat("a", bcryptMaxInput+1),
			wantErr:  true,
		},
		{
			name:     "missing uppercase",
			policy:   config.PasswordStrengthConfig{MinLength: 8, RequireUppercase: true},
			password: "secret123",
			wantErr:  true,
		},
		{
			name:     "missing number",
			policy:   config.PasswordStrengthConfig{MinLength: 8, RequireNumbers: true},
			password: "secretpass",
			wantErr:  true,
		},
		{
			name:     "missing special character",
			policy:   config.PasswordStrengthConfig{MinLength: 8, RequireSpecial: true},
			password: "Secret123",
			wantErr:  true,
		},
		{
			name: "satisfies every class",
			policy: config.PasswordStrengthConfig{
				MinLength:        8,
				RequireUppercase: true,
				RequireLowercase: true,
				RequireNumbers:   true,
				RequireSpecial:   true,
			},
			password: "Secret123!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := newBcryptHasher(bcrypt.MinCost, tt.policy)
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

				return
			}
			assert.NoError(t, err)
		})
	}
}
