package service

import (
	"edu-center/database"
	"edu-center/database/model"
	"edu-center/logger"
	"edu-center/web/token"
)

// AuthService drives login, logout and token refresh on top of the token
// service and the user credential checks.
type AuthService struct {
	userService  UserService
	tokenService *token.Service
}

func NewAuthService(tokenService *token.Service) *AuthService {
	return &AuthService{tokenService: tokenService}
}

// Login checks credentials and issues a token pair; the HTTP layer also
// opens a session for the caller.
func (s *AuthService) Login(username, password string) (*model.User, *token.Pair, error) {
	user := s.userService.CheckUser(username, password)
	if user == nil {
		return nil, nil, nil
	}
	pair, err := s.tokenService.Issue(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Logout revokes the refresh token. Revocation is best-effort: the session
// is cleared by the HTTP layer regardless, and a blacklist failure is
// surfaced via ErrRevocationFailed without undoing the logout.
func (s *AuthService) Logout(refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.tokenService.Revoke(refreshToken); err != nil {
		logger.Warningf("logout completed but refresh token revocation failed: %v", err)
		return ErrRevocationFailed
	}
	return nil
}

// Refresh rotates a refresh token: the old one is verified against the
// blacklist, revoked, and a fresh pair is issued for the current user row.
func (s *AuthService) Refresh(refreshToken string) (*token.Pair, error) {
	claims, err := s.tokenService.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	user := &model.User{}
	if err := database.GetDB().First(user, "id = ?", claims.Subject).Error; err != nil {
		return nil, token.ErrInvalidToken
	}

	if err := s.tokenService.Revoke(refreshToken); err != nil {
		logger.Warningf("failed to revoke rotated refresh token: %v", err)
	}
	return s.tokenService.Issue(user)
}
