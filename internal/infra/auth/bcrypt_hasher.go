// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"coursebridge/config"
	domainerrors "coursebridge/internal/domain/errors"
	"coursebridge/internal/domain/service"
	"coursebridge/internal/errors"
)

// defaultForbiddenWords are rejected as password substrings regardless of the
// configured policy.
var defaultForbiddenWords = []string{"password", "admin"}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost             int
	minLength        int
	maxLength        int // 0 disables the maximum length check
	requireUppercase bool
	requireLowercase bool
	requireNumbers   bool
	requireSpecial   bool
	forbiddenWords   []string
}

// NewBcryptHasher is the constructor for bcryptHasher with the default strength policy.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher() service.PasswordHasher {
	return NewBcryptHasherWithCost(bcrypt.DefaultCost)
}

// NewBcryptHasherWithCost builds a hasher with a custom bcrypt cost factor.
// Lower costs speed up tests considerably.
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{
		cost:             cost,
		minLength:        8,
		requireUppercase: true,
		requireLowercase: true,
		requireNumbers:   true,
		requireSpecial:   true,
		forbiddenWords:   defaultForbiddenWords,
	}
}

// NewBcryptHasherFromConfig builds a hasher from application configuration,
// keeping the default policy for any unset field.
func NewBcryptHasherFromConfig(cfg *config.Config) service.PasswordHasher {
	hasher := &bcryptHasher{
		cost:             bcrypt.DefaultCost,
		minLength:        8,
		requireUppercase: true,
		requireLowercase: true,
		requireNumbers:   true,
		requireSpecial:   true,
		forbiddenWords:   defaultForbiddenWords,
	}

	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		hasher.cost = cfg.Auth.BcryptCost
	}

	if policy := cfg.PasswordStrength; policy != nil {
		if policy.MinLength > 0 {
			hasher.minLength = policy.MinLength
		}
		hasher.maxLength = policy.MaxLength
		hasher.requireUppercase = policy.RequireUppercase
		hasher.requireLowercase = policy.RequireLowercase
		hasher.requireNumbers = policy.RequireNumbers
		hasher.requireSpecial = policy.RequireSpecial
	}

	return hasher
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// The password must satisfy the strength policy. bcrypt handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks a plaintext password against the strength policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.minLength {
		return errors.Wrapf(domainerrors.ErrPasswordStrength,
			"password must be at least %d characters long", h.minLength)
	}

	if h.maxLength > 0 && len(password) > h.maxLength {
		return errors.Wrapf(domainerrors.ErrPasswordStrength,
			"password must be at most %d characters long", h.maxLength)
	}

	if h.requireLowercase && !h.hasLowercase(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength,
			"password must contain at least one lowercase letter")
	}

	if h.requireUppercase && !h.hasUppercase(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength,
			"password must contain at least one uppercase letter")
	}

	if h.requireNumbers && !h.hasNumbers(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength,
			"password must contain at least one number")
	}

	if h.requireSpecial && !h.hasSpecialChars(password) {
		return errors.Wrap(domainerrors.ErrPasswordStrength,
			"password must contain at least one special character")
	}

	if h.containsForbiddenWords(password, h.forbiddenWords) {
		return errors.Wrap(domainerrors.ErrPasswordForbiddenWords,
			"password contains forbidden words")
	}

	return nil
}

func (h *bcryptHasher) hasUppercase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func (h *bcryptHasher) hasLowercase(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return true
		}
	}
	return false
}

func (h *bcryptHasher) hasNumbers(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func (h *bcryptHasher) hasSpecialChars(s string) bool {
	for _, r := range s {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return true
		}
	}
	return false
}

func (h *bcryptHasher) containsForbiddenWords(s string, words []string) bool {
	lowered := strings.ToLower(s)
	for _, word := range words {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}
