// Package token implements the JWT token service: signed access and
// refresh tokens, verification, and refresh-token revocation backed by a
// database blacklist.
package token

import (
	"errors"
	"time"

	"edu-center/config"
	"edu-center/database"
	"edu-center/database/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrRevokedToken = errors.New("token has been revoked")
)

// Claims carries the authenticated user data inside a signed token.
type Claims struct {
	Username  string `json:"username"`
	Role      string `json:"role"`
	TokenType string `json:"tokenType"`
	jwt.RegisteredClaims
}

// Pair is the result of issuing tokens for a user.
type Pair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type Service struct {
	secret          []byte
	accessLifetime  time.Duration
	refreshLifetime time.Duration
}

func NewService() *Service {
	return &Service{
		secret:          []byte(config.GetJWTSecret()),
		accessLifetime:  config.GetAccessTokenLifetime(),
		refreshLifetime: config.GetRefreshTokenLifetime(),
	}
}

// Issue signs a fresh access/refresh pair for the user.
func (s *Service) Issue(user *model.User) (*Pair, error) {
	access, err := s.sign(user, TypeAccess, s.accessLifetime)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(user, TypeRefresh, s.refreshLifetime)
	if err != nil {
		return nil, err
	}
	return &Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Service) sign(user *model.User, tokenType string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username:  user.Username,
		Role:      string(user.Role),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Id,
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Verify checks an access token and returns its claims.
func (s *Service) Verify(tokenStr string) (*Claims, error) {
	claims, err := s.parse(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TypeAccess {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// VerifyRefresh checks a refresh token, including the revocation blacklist.
func (s *Service) VerifyRefresh(tokenStr string) (*Claims, error) {
	claims, err := s.parse(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TypeRefresh {
		return nil, ErrInvalidToken
	}

	var count int64
	err = database.GetDB().Model(&model.RevokedToken{}).
		Where("token_id = ?", claims.ID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrRevokedToken
	}
	return claims, nil
}

// Revoke blacklists a refresh token until its natural expiry. Revoking an
// already revoked token is a no-op.
func (s *Service) Revoke(refreshToken string) error {
	claims, err := s.parse(refreshToken)
	if err != nil {
		return err
	}
	if claims.TokenType != TypeRefresh {
		return ErrInvalidToken
	}

	db := database.GetDB()
	var count int64
	if err := db.Model(&model.RevokedToken{}).Where("token_id = ?", claims.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	revoked := &model.RevokedToken{
		TokenId:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	return db.Create(revoked).Error
}
