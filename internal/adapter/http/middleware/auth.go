package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/The0ne18/jobsbreeze-api/internal/auth"
	"github.com/The0ne18/jobsbreeze-api/internal/domain/entities"
	"github.com/The0ne18/jobsbreeze-api/pkg"
)

const (
	userContextKey  = "authUser"
	sessionCookie   = "session_token"
	bearerPrefix    = "Bearer "
	authorizationHd = "Authorization"
)

// RequireAuth rejects requests that do not carry a valid session token,
// either as a Bearer header or as the session cookie.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c, "missing credentials")
			return
		}

		claims, err := auth.ParseToken(secret, token)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(userContextKey, claims.User())
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by RequireAuth.
func CurrentUser(c *gin.Context) (entities.User, bool) {
	value, ok := c.Get(userContextKey)
	if !ok {
		return entities.User{}, false
	}
	user, ok := value.(entities.User)
	return user, ok
}

func extractToken(c *gin.Context) string {
	header := c.GetHeader(authorizationHd)
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie != "" {
		return cookie
	}
	return ""
}

func abortUnauthorized(c *gin.Context, msg string) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", msg, http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
