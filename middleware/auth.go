package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Jlcht/Aurelian-Timeworks/models"
	"github.com/Jlcht/Aurelian-Timeworks/web"
)

// Context keys set by ValidateToken for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// RoleLookup resolves a subject id to its stored role.
type RoleLookup interface {
	RoleOf(ctx context.Context, id string) (string, error)
}

// ValidateToken requires a valid "Authorization: Bearer <token>" header,
// verifies the token against JWT_SECRET and resolves the caller's role from
// the user store. Any role-lookup failure rejects the request: a role we
// cannot confirm is no role at all.
func ValidateToken(roles RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			web.Fail(c, http.StatusUnauthorized, "Authorization header is missing")
			c.Abort()
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			web.Fail(c, http.StatusUnauthorized, "Authorization header must use the Bearer scheme")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			web.Fail(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			web.Fail(c, http.StatusUnauthorized, "Invalid token claims")
			c.Abort()
			return
		}
		userID, _ := claims["user_id"].(string)
		email, _ := claims["email"].(string)
		if userID == "" {
			web.Fail(c, http.StatusUnauthorized, "Invalid token claims")
			c.Abort()
			return
		}

		role, err := roles.RoleOf(c.Request.Context(), userID)
		if err != nil {
			log.Printf("❌ Role lookup failed for %s: %v", userID, err)
			web.Fail(c, http.StatusUnauthorized, "Unable to verify account")
			c.Abort()
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxEmail, email)
		c.Set(CtxRole, role)
		c.Next()
	}
}

// RequireAdmin passes only callers ValidateToken resolved to the admin role.
// Without a verified identity in context the request is unauthenticated, not
// forbidden.
func RequireAdmin(c *gin.Context) {
	role, exists := c.Get(CtxRole)
	if !exists {
		web.Fail(c, http.StatusUnauthorized, "Authentication required")
		c.Abort()
		return
	}
	if role != models.RoleAdmin {
		web.Fail(c, http.StatusForbidden, "Admin access required")
		c.Abort()
		return
	}
	c.Next()
}
