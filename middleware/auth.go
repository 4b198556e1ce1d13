package middleware

import (
	"context"
	"strings"

	"medicare/models"
	"medicare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenVerifier checks a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*utils.Claims, error)
}

// RoleLookup resolves the stored role of a user by email.
type RoleLookup interface {
	Role(ctx context.Context, email string) (string, error)
}

// VerifyToken requires a valid bearer token and stores its email as the
// request principal.
func VerifyToken(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, utils.ErrUnauthorized)
			return
		}
		claims, err := verifier.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.Set(utils.PrincipalKey, claims.Email)
		c.Next()
	}
}

// VerifyAdmin must run after VerifyToken. Unknown users and non-admins are
// both forbidden.
func VerifyAdmin(roles RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := Principal(c)
		if principal == "" {
			utils.RespondError(c, utils.ErrUnauthorized)
			return
		}
		role, err := roles.Role(c.Request.Context(), principal)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if role != models.RoleAdmin {
			utils.LoggerFrom(c).Warn("Admin route denied", zap.String("email", principal))
			utils.RespondError(c, utils.ErrForbidden)
			return
		}
		c.Next()
	}
}

// Principal returns the verified email of the caller, or "".
func Principal(c *gin.Context) string {
	return c.GetString(utils.PrincipalKey)
}
