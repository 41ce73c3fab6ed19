package middleware

import (
	"net/http"
	"strings"
	"tzfield/internal/auth"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// AuthMiddleware guards routes with the credentials the CMS host hands out:
// session tokens for editor traffic and the provisioning key for
// operational endpoints.
type AuthMiddleware struct {
	authService *auth.Service
}

func NewAuthMiddleware(authService *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

func (m *AuthMiddleware) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header"})
			c.Abort()
			return
		}

		session, err := m.authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Set("is_admin", session.IsAdmin)

		c.Next()
	}
}

func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("is_admin")
		if !exists || !isAdmin.(bool) {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// ProvisionKeyRequired authorizes operational endpoints with the
// X-Provision-Key header instead of a session token.
func (m *AuthMiddleware) ProvisionKeyRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := m.authService.CheckProvisionKey(c.GetHeader("X-Provision-Key")); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid provisioning key"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionFrom returns the session AuthRequired stored on the context, or nil
// on unauthenticated routes.
func SessionFrom(c *gin.Context) *auth.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*auth.Session); ok {
			return s
		}
	}
	return nil
}
