package middleware

import (
	"net/http"
	"strings"

	"edu-center/database"
	"edu-center/database/model"
	"edu-center/logger"
	"edu-center/web/entity"
	"edu-center/web/session"
	"edu-center/web/token"

	"github.com/gin-gonic/gin"
)

const identityKey = "IDENTITY"

// Identity returns the authenticated user set by one of the auth
// middlewares, or nil.
func Identity(c *gin.Context) *model.User {
	if obj, exists := c.Get(identityKey); exists {
		if user, ok := obj.(*model.User); ok {
			return user
		}
	}
	return nil
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, entity.Msg{Success: false, Msg: msg})
}

func userFromToken(c *gin.Context, tokenService *token.Service) *model.User {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil
	}
	claims, err := tokenService.Verify(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return nil
	}

	user := &model.User{}
	err = database.GetDB().First(user, "id = ?", claims.Subject).Error
	if err != nil {
		return nil
	}
	return user
}

// TokenAuth authenticates the request by its bearer token.
func TokenAuth(tokenService *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := userFromToken(c, tokenService)
		if user == nil {
			abortUnauthorized(c, "invalid or missing token")
			return
		}
		c.Set(identityKey, user)
		c.Next()
	}
}

// SessionAuth authenticates the request by its session cookie.
func SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionUser := session.GetLoginUser(c)
		if sessionUser == nil {
			abortUnauthorized(c, "invalid or missing session")
			return
		}
		c.Set(identityKey, sessionUser)
		c.Next()
	}
}

// DualAuth requires both a valid bearer token and a valid session. The two
// channels are verified independently; when they name different users the
// mismatch is logged and the token identity wins.
func DualAuth(tokenService *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenUser := userFromToken(c, tokenService)
		if tokenUser == nil {
			abortUnauthorized(c, "invalid or missing token")
			return
		}

		sessionUser := session.GetLoginUser(c)
		if sessionUser == nil {
			abortUnauthorized(c, "invalid or missing session")
			return
		}

		if tokenUser.Id != sessionUser.Id {
			logger.Warningf("dual auth mismatch: token user %s, session user %s", tokenUser.Username, sessionUser.Username)
		}

		c.Set(identityKey, tokenUser)
		c.Next()
	}
}

// RequireRole rejects authenticated callers whose role is not in the list.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[model.Role]bool)
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		user := Identity(c)
		if user == nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		if !allowed[user.Role] {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}
