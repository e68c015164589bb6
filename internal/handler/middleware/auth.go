package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"spinwheel/internal/domain/user"
	"spinwheel/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// TokenValidator decouples the middleware from the concrete JWT service.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

const ctxPrincipalKey = "principal"

var roleHierarchy = map[user.Role]int{
	user.RoleMember: 1,
	user.RoleAdmin:  2,
}

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func setPrincipal(c *gin.Context, claims *jwt.Claims) {
	role, err := user.NewRole(claims.Role)
	if err != nil {
		role = user.RoleMember
	}
	c.Set(ctxPrincipalKey, user.Principal{
		ID:    claims.UserID,
		Phone: claims.Phone,
		Role:  role,
	})
	c.Set("jwt_claims", map[string]any{
		"user_id": claims.UserID.String(),
		"role":    claims.Role,
	})
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		setPrincipal(c, claims)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but never
// aborts. The wheel status endpoint serves both states.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			// Invalid token; continue as anonymous.
			c.Next()
			return
		}

		setPrincipal(c, claims)
		c.Next()
	}
}

func hasMinimumRole(userRole, minRole user.Role) bool {
	userLevel, userExists := roleHierarchy[userRole]
	minLevel, minExists := roleHierarchy[minRole]
	return userExists && minExists && userLevel >= minLevel
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(principal.Role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetPrincipal(c *gin.Context) (user.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return user.Principal{}, false
	}

	p, ok := v.(user.Principal)
	return p, ok
}
