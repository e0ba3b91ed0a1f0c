package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/dental-care-api/internal/apperrors"
	"github.com/harentsoaR/dental-care-api/internal/repository"
	"github.com/harentsoaR/dental-care-api/internal/utils"
)

// Context keys set by Authenticate.
const (
	ClaimsKey = "claims"
	EmailKey  = "email"
)

// TokenVerifier is satisfied by *utils.TokenService.
type TokenVerifier interface {
	Verify(token string) (*utils.Claims, error)
}

// Authenticate rejects requests without a valid bearer token and stores the
// decoded claims on the context.
func Authenticate(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		tokenString, ok := bearerToken(authHeader)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		claims, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(EmailKey, claims.Email)

		c.Next()
	}
}

// RequireAdmin must run after Authenticate. The role is read from the store on
// every request so a demotion takes effect without waiting for token expiry.
func RequireAdmin(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(EmailKey)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), email)
		if errors.Is(err, apperrors.ErrNotFound) || (err == nil && !user.IsAdmin()) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		if err != nil {
			log.Printf("[%s] admin lookup for %s failed: %v", RequestIDFrom(c), email, err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"message": "service unavailable"})
			return
		}

		c.Next()
	}
}

// ClaimsFrom returns the claims stored by Authenticate, if any.
func ClaimsFrom(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}

func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
