package middleware

import (
	"net/http"
	"strings"

	"farmsync/internal/redis"
	"farmsync/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	sessionKey = "session"
	tokenKey   = "session_token"
)

// RequireSession resolves the bearer token to a live session and attaches it
// to the request context.
func RequireSession(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
			return
		}

		session, err := auth.Current(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Set(sessionKey, session)
		c.Set(tokenKey, token)
		c.Next()
	}
}

// RequireOwner restricts a route to owner sessions.
func RequireOwner() gin.HandlerFunc {
	return requireKind(redis.KindOwner)
}

// RequireWorker restricts a route to worker sessions.
func RequireWorker() gin.HandlerFunc {
	return requireKind(redis.KindWorker)
}

func requireKind(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := SessionFrom(c)
		if session == nil || session.Kind != kind {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}

// SessionFrom returns the session attached by RequireSession, or nil.
func SessionFrom(c *gin.Context) *redis.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*redis.Session)
	return session
}

// TokenFrom returns the raw session token attached by RequireSession.
func TokenFrom(c *gin.Context) string {
	v, ok := c.Get(tokenKey)
	if !ok {
		return ""
	}
	token, _ := v.(string)
	return token
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
}
