package middleware

import (
	"net/http"
	"strings"

	"sportsclub_backend/internal/models"
	"sportsclub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PrincipalKey is the context key holding the authenticated principal.
const PrincipalKey = "principal"

// AuthMiddleware creates a Gin middleware for JWT authentication.
// The verified claims are exposed as an explicit models.Principal so that
// handlers pass the acting principal into services rather than relying on
// ambient session state.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format. Use Bearer <token>"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			c.Abort()
			return
		}

		c.Set(PrincipalKey, models.Principal{
			UserID:   claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		})

		c.Next()
	}
}

// GetPrincipal extracts the authenticated principal from the Gin context.
// The zero Principal is returned when AuthMiddleware has not run.
func GetPrincipal(c *gin.Context) models.Principal {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return models.Principal{}
	}
	principal, ok := value.(models.Principal)
	if !ok {
		return models.Principal{}
	}
	return principal
}

// RoleAuthMiddleware creates a Gin middleware for role-based authorization.
// It checks if the principal's role is one of the allowed roles.
func RoleAuthMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal.Role == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "No principal in context. Ensure AuthMiddleware runs first."})
			c.Abort()
			return
		}

		allowed := false
		for _, r := range allowedRoles {
			if strings.EqualFold(principal.Role, r) {
				allowed = true
				break
			}
		}

		if !allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource. Required roles: " + strings.Join(allowedRoles, ", ")})
			c.Abort()
			return
		}

		c.Next()
	}
}
