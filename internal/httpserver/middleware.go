package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-api/internal/auth"
	"storefront-api/internal/domain"
)

const (
	ctxKeyClaims = "authClaims"
	ctxKeyUserID = "authUserID"
)

type tokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// requireAuth validates the bearer token and seeds the request context
// with the caller's claims.
func requireAuth(tokens tokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, prefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
			return
		}

		c.Set(ctxKeyClaims, claims)
		c.Set(ctxKeyUserID, claims.UserID)
		c.Next()
	}
}

// requireRoles allows the request through when the caller holds any of
// the listed roles. It must run after requireAuth.
func requireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := claimsFrom(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "insufficient role"})
	}
}

func claimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(ctxKeyClaims)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

func userIDFrom(c *gin.Context) string {
	return c.GetString(ctxKeyUserID)
}
