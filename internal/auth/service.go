// Package auth validates the credentials the CMS host presents: an HS256
// session token signed with the shared secret for editor traffic, and a
// bcrypt-checked provisioning key for operational endpoints.
package auth

import (
	"errors"
	"time"
	"tzfield/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidToken indicates the token is invalid
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired indicates the token has expired
	ErrTokenExpired = errors.New("token expired")
	// ErrInvalidKey indicates the provisioning key does not match
	ErrInvalidKey = errors.New("invalid provisioning key")
)

// Session identifies one authenticated editor session.
type Session struct {
	ProjectID string
	IsAdmin   bool
}

// Service provides authentication functionality
type Service struct {
	config *config.Config
}

// NewService creates a new authentication service
func NewService(config *config.Config) *Service {
	return &Service{config: config}
}

// GenerateToken signs a session token. The CMS host normally does this
// itself with the shared secret; the service signs its own tokens only in
// tests and local tooling.
func (s *Service) GenerateToken(projectID string, isAdmin bool, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"project_id": projectID,
		"is_admin":   isAdmin,
		"exp":        time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Auth.JWTSecret))
}

// ValidateToken validates a session token and returns the session it
// describes.
func (s *Service) ValidateToken(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	projectID, ok := claims["project_id"].(string)
	if !ok || projectID == "" {
		return nil, ErrInvalidToken
	}
	isAdmin, _ := claims["is_admin"].(bool)

	return &Session{ProjectID: projectID, IsAdmin: isAdmin}, nil
}

// HashProvisionKey hashes a provisioning key using bcrypt; used by the
// deployment tooling to produce PROVISION_KEY_HASH.
func HashProvisionKey(key string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckProvisionKey compares a presented key with the configured hash.
// Key access is disabled entirely when no hash is configured.
func (s *Service) CheckProvisionKey(key string) error {
	if s.config.Auth.ProvisionKeyHash == "" || key == "" {
		return ErrInvalidKey
	}
	if bcrypt.CompareHashAndPassword([]byte(s.config.Auth.ProvisionKeyHash), []byte(key)) != nil {
		return ErrInvalidKey
	}
	return nil
}
