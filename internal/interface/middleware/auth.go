package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rizkyamp/go-store-api/internal/domain/entity"
	"github.com/rizkyamp/go-store-api/pkg/blacklist"
	"github.com/rizkyamp/go-store-api/pkg/helpers"
	"github.com/rizkyamp/go-store-api/pkg/response"
)

// Context keys set by the auth middleware on success.
const (
	CtxUserIDKey   = "userID"
	CtxUserRoleKey = "userRole"
)

// Auth validates the bearer token from the Authorization header: missing
// token, revoked token and failed verification each reject with 401.
// Decoded claims are attached to the Gin context on success.
func Auth(jwt *helpers.JWTManager, revoked *blacklist.Registry) gin.HandlerFunc {
	return authenticate(jwt, revoked, "")
}

// AuthRole behaves like Auth and additionally requires the claim role to
// match, rejecting with 403 otherwise.
func AuthRole(jwt *helpers.JWTManager, revoked *blacklist.Registry, role entity.Role) gin.HandlerFunc {
	return authenticate(jwt, revoked, role)
}

func authenticate(jwt *helpers.JWTManager, revoked *blacklist.Registry, required entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			response.AbortErr(c, http.StatusUnauthorized, "No token provided")
			return
		}
		if revoked.Has(token) {
			response.AbortErr(c, http.StatusUnauthorized, "Token has been revoked")
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortErr(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUserRoleKey, claims.Role)

		if required != "" && claims.Role != string(required) {
			response.AbortErr(c, http.StatusForbidden, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Anything before the first space is discarded without checking
// the scheme word, as the original service does.
func BearerToken(c *gin.Context) string {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
