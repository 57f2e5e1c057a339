package controller

import (
	"errors"
	"net/http"

	"edu-center/config"
	"edu-center/logger"
	"edu-center/web/middleware"
	"edu-center/web/service"
	"edu-center/web/session"
	"edu-center/web/token"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login request structure.
type LoginForm struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshForm struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

type logoutForm struct {
	RefreshToken string `json:"refreshToken"`
}

type changePasswordForm struct {
	OldPassword     string `json:"oldPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	RefreshToken    string `json:"refreshToken"`
}

// AuthController handles login, logout, token issuance and password changes.
type AuthController struct {
	authService  *service.AuthService
	userService  service.UserService
	tokenService *token.Service
}

func NewAuthController(g *gin.RouterGroup, tokenService *token.Service) *AuthController {
	a := &AuthController{
		authService:  service.NewAuthService(tokenService),
		tokenService: tokenService,
	}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	auth := g.Group("/auth")
	auth.POST("/login", a.login)
	auth.POST("/logout", a.logout)
	auth.POST("/token", a.issueToken)
	auth.POST("/token/refresh", a.refreshToken)

	profile := g.Group("/profile")
	profile.Use(middleware.DualAuth(a.tokenService))
	profile.POST("/change-password", a.changePassword)
}

// login checks credentials, opens a session and returns a token pair.
func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid login form")
		return
	}

	user, pair, err := a.authService.Login(form.Username, form.Password)
	if err != nil {
		jsonError(c, err)
		return
	}
	if user == nil {
		logger.Warningf("failed login for %q from %s", form.Username, getRemoteIp(c))
		pureJsonMsg(c, http.StatusUnauthorized, false, "wrong username or password")
		return
	}

	if err := session.SetMaxAge(c, config.GetSessionMaxAge()); err != nil {
		logger.Warning("unable to set session max age:", err)
	}
	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("unable to save session:", err)
	}

	logger.Infof("%s logged in from %s", user.Username, getRemoteIp(c))
	jsonObj(c, pair)
}

// logout clears the session and revokes the refresh token. The logout
// stands even when the revocation fails; that failure is reported.
func (a *AuthController) logout(c *gin.Context) {
	var form logoutForm
	_ = c.ShouldBindJSON(&form)

	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}

	if err := a.authService.Logout(form.RefreshToken); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "logged out, but the refresh token could not be revoked")
		return
	}
	jsonMsg(c, "logged out")
}

// issueToken returns a fresh token pair for valid credentials without
// touching the session.
func (a *AuthController) issueToken(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid login form")
		return
	}

	user, pair, err := a.authService.Login(form.Username, form.Password)
	if err != nil {
		jsonError(c, err)
		return
	}
	if user == nil {
		pureJsonMsg(c, http.StatusUnauthorized, false, "wrong username or password")
		return
	}
	jsonObj(c, pair)
}

// refreshToken rotates a refresh token into a fresh pair.
func (a *AuthController) refreshToken(c *gin.Context) {
	var form refreshForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "refresh token is required")
		return
	}

	pair, err := a.authService.Refresh(form.RefreshToken)
	if err != nil {
		if errors.Is(err, token.ErrInvalidToken) || errors.Is(err, token.ErrRevokedToken) {
			pureJsonMsg(c, http.StatusUnauthorized, false, err.Error())
			return
		}
		jsonError(c, err)
		return
	}
	jsonObj(c, pair)
}

// changePassword runs behind dual authentication: both the bearer token
// and the session must belong to a logged-in caller.
func (a *AuthController) changePassword(c *gin.Context) {
	var form changePasswordForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "old, new and confirm passwords are required")
		return
	}

	user := middleware.Identity(c)
	err := a.userService.ChangePassword(user, form.OldPassword, form.NewPassword, form.ConfirmPassword, form.RefreshToken, a.tokenService)
	if err != nil {
		if errors.Is(err, service.ErrRevocationFailed) {
			pureJsonMsg(c, http.StatusOK, false, "password changed, but the refresh token could not be revoked")
			return
		}
		jsonError(c, err)
		return
	}
	jsonMsg(c, "password changed")
}
