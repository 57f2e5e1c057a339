package service

import (
	"testing"

	"edu-center/database/model"
	"edu-center/web/token"

	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	setup()
	defer teardown()

	authService := NewAuthService(token.NewService())
	mustCreateUser(t, "lena", model.RoleStudent)

	user, pair, err := authService.Login("lena", "secret123")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.NotNil(t, pair)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	user, pair, err = authService.Login("lena", "wrong")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.Nil(t, pair)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	setup()
	defer teardown()

	tokenService := token.NewService()
	authService := NewAuthService(tokenService)
	mustCreateUser(t, "lena", model.RoleStudent)

	_, pair, err := authService.Login("lena", "secret123")
	assert.NoError(t, err)

	assert.NoError(t, authService.Logout(pair.RefreshToken))
	_, err = tokenService.VerifyRefresh(pair.RefreshToken)
	assert.ErrorIs(t, err, token.ErrRevokedToken)

	// logout without a token is a no-op
	assert.NoError(t, authService.Logout(""))
}

func TestRefreshRotatesTokens(t *testing.T) {
	setup()
	defer teardown()

	tokenService := token.NewService()
	authService := NewAuthService(tokenService)
	mustCreateUser(t, "lena", model.RoleStudent)

	_, pair, err := authService.Login("lena", "secret123")
	assert.NoError(t, err)

	fresh, err := authService.Refresh(pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)
	assert.NotEqual(t, pair.RefreshToken, fresh.RefreshToken)

	// the old refresh token died in the rotation
	_, err = authService.Refresh(pair.RefreshToken)
	assert.ErrorIs(t, err, token.ErrRevokedToken)

	// the new one still works
	_, err = tokenService.VerifyRefresh(fresh.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	setup()
	defer teardown()

	authService := NewAuthService(token.NewService())

	_, err := authService.Refresh("not-a-token")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
