package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jd6186/interview-assignments/domain"
)

// ContextUserID is the gin context key carrying the authenticated subject
const ContextUserID = "user_id"

// AuthMiddleware creates the bearer-token authentication middleware. This is
// the one boundary that answers with a real 401 status line; every other
// failure in the system travels inside a 200 envelope. Expired and forged
// tokens are deliberately not distinguished here.
func AuthMiddleware(tokenSvc domain.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			reject(c)
			return
		}

		tokenParts := strings.SplitN(authHeader, " ", 2)
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			reject(c)
			return
		}

		userID, err := tokenSvc.Decode(tokenParts[1])
		if err != nil {
			reject(c)
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

func reject(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, domain.Fail(domain.KindInvalidCredentials))
}

// SubjectID returns the authenticated user id set by AuthMiddleware
func SubjectID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
