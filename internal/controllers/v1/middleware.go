package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/niaga/backend/internal/models"
)

// AuthTokenHeader is the header clients send their credential in.
const AuthTokenHeader = "x-auth-token"

// contextUser is the gin context key the authenticated user is stored under.
const contextUser = "niaga-authenticated-user"

// Authenticated resolves the x-auth-token header to a user and stores it in
// the request context. Requests without a valid credential are rejected
// before any handler runs.
func Authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := models.ResolveSession(models.DB, c.GetHeader(AuthTokenHeader))
		if err != nil {
			c.AbortWithStatusJSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		c.Set(contextUser, user)
		c.Next()
	}
}

// currentUser returns the user resolved by the Authenticated middleware.
func currentUser(c *gin.Context) models.User {
	return c.MustGet(contextUser).(models.User)
}
