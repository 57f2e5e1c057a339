package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"edu-center/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newSessionEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(sessions.Sessions("edu-center", cookie.NewStore([]byte("test-secret"))))
	return engine
}

func TestSetLoginUserStripsPasswordHash(t *testing.T) {
	engine := newSessionEngine()
	engine.GET("/", func(c *gin.Context) {
		user := &model.User{
			Id:       "user-1",
			Username: "lena",
			Password: "$2a$12$hash",
			Role:     model.RoleStudent,
		}
		assert.NoError(t, SetLoginUser(c, user))

		stored := GetLoginUser(c)
		assert.NotNil(t, stored)
		assert.Equal(t, "user-1", stored.Id)
		assert.Equal(t, "lena", stored.Username)
		assert.Empty(t, stored.Password)

		// the caller's copy is left alone
		assert.Equal(t, "$2a$12$hash", user.Password)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClearSession(t *testing.T) {
	engine := newSessionEngine()
	engine.GET("/", func(c *gin.Context) {
		user := &model.User{Id: "user-1", Username: "lena", Role: model.RoleStudent}
		assert.NoError(t, SetLoginUser(c, user))
		assert.NotNil(t, GetLoginUser(c))

		assert.NoError(t, ClearSession(c))
		assert.Nil(t, GetLoginUser(c))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
