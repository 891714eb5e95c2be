// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"coursebridge/config"
	domainerrors "coursebridge/internal/domain/errors"
	"coursebridge/internal/domain/service"
	"coursebridge/internal/errors"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	defaultAccessTTL  = 30 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Access and refresh tokens are signed with separate secrets so a leaked
// access secret cannot be used to mint refresh tokens.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	srv := &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     defaultAccessTTL,
		refreshTTL:    defaultRefreshTTL,
	}

	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			srv.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			srv.refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return srv, nil
}

// GenerateTokens creates a new access token and refresh token for a given user and roles.
func (s *jwtService) GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, roles, s.accessTTL, s.accessSecret, tokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	// Refresh tokens carry no roles. Authorization always goes through the access token.
	refreshToken, err = s.generateToken(userID, nil, s.refreshTTL, s.refreshSecret, tokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken checks the validity of a token string of either kind.
// The token type claim is read without verification first to select the
// signing secret, then the signature and expiry are verified against it.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	unverified, _, err := jwt.NewParser().ParseUnverified(tokenString, &service.Claims{})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "failed to parse token structure")
	}

	unverifiedClaims, ok := unverified.Claims.(*service.Claims)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "unexpected token claims")
	}

	var secret string
	switch unverifiedClaims.Type {
	case tokenTypeAccess:
		secret = s.accessSecret
	case tokenTypeRefresh:
		secret = s.refreshSecret
	default:
		return nil, errors.Wrapf(domainerrors.ErrTokenInvalid, "unknown token type %q", unverifiedClaims.Type)
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrTokenExpired, "token has expired")
		}
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token verification failed")
	}

	claims, ok := parsed.Claims.(*service.Claims)
	if !ok || !parsed.Valid {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "unexpected token claims")
	}

	return claims, nil
}

// ValidateAccessToken checks the validity of a token and requires it to be an access token.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Type != tokenTypeAccess {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token is not an access token")
	}
	return claims, nil
}

// ValidateRefreshToken checks the validity of a token and requires it to be a refresh token.
func (s *jwtService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.Type != tokenTypeRefresh {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token is not a refresh token")
	}
	return claims, nil
}

// HashToken returns the hex-encoded SHA-256 digest of a token.
// Refresh tokens are stored hashed so a database leak does not expose them.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, roles []string, ttl time.Duration, secret, tokenType string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		Roles:  roles,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
