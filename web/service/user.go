// Package service holds the resource services: CRUD orchestration that
// applies the validation rules and persists via gorm.
package service

import (
	"errors"

	"edu-center/database"
	"edu-center/database/model"
	"edu-center/logger"
	"edu-center/util/crypto"
	"edu-center/validation"
	"edu-center/web/token"

	"gorm.io/gorm"
)

// ErrRevocationFailed reports that a password change or logout succeeded
// but the refresh token could not be blacklisted. The primary action is
// never rolled back over this.
var ErrRevocationFailed = errors.New("failed to revoke refresh token")

type UserService struct{}

// UserPatch carries the updatable fields of a user; nil means "keep".
type UserPatch struct {
	FirstName   *string
	LastName    *string
	Patronymic  *string
	Email       *string
	PhoneNumber *string
	Role        *model.Role
}

func (s *UserService) List() ([]model.User, error) {
	db := database.GetDB()
	var users []model.User
	err := db.Order("joined_at desc").Find(&users).Error
	return users, err
}

func (s *UserService) Get(id string) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	if err := db.First(user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByUsername(username string) (*model.User, error) {
	db := database.GetDB()
	user := &model.User{}
	if err := db.First(user, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) validate(user *model.User) error {
	return validation.Collect(
		validation.NonEmpty("username", user.Username),
		validation.UserRole(user.Role),
		validation.UserPhone(user.Role, user.PhoneNumber),
	)
}

// applyDerivedFields recomputes everything derived from the role. Runs on
// every save so the staff flag can never be set from input.
func (s *UserService) applyDerivedFields(user *model.User) {
	user.IsStaff = user.Role == model.RoleAdmin
}

// postCreate is the explicit post-create hook: elevated accounts get their
// staff privileges noted right after the row exists.
func (s *UserService) postCreate(user *model.User) {
	if user.IsStaff {
		logger.Infof("granted staff privileges to new user %s", user.Username)
	}
}

func (s *UserService) Create(user *model.User, rawPassword string) error {
	if err := validation.Collect(validation.NonEmpty("password", rawPassword)); err != nil {
		return err
	}
	if err := s.validate(user); err != nil {
		return err
	}

	hash, err := crypto.HashPasswordAsBcrypt(rawPassword)
	if err != nil {
		return err
	}
	user.Password = hash
	s.applyDerivedFields(user)

	if err := database.GetDB().Create(user).Error; err != nil {
		return err
	}
	s.postCreate(user)
	return nil
}

func (s *UserService) Update(id string, patch UserPatch) (*model.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Patronymic != nil {
		user.Patronymic = *patch.Patronymic
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.PhoneNumber != nil {
		user.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}

	if err := s.validate(user); err != nil {
		return nil, err
	}
	s.applyDerivedFields(user)

	if err := database.GetDB().Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user. A linked teaching profile goes first so its
// certificate files are cleaned up, then the row itself.
func (s *UserService) Delete(id string, teacherInfoService *TeacherInfoService) error {
	user, err := s.Get(id)
	if err != nil {
		return err
	}

	info := &model.TeacherInfo{}
	err = database.GetDB().First(info, "user_id = ?", user.Id).Error
	if err == nil {
		if err := teacherInfoService.Delete(info.Id); err != nil {
			return err
		}
	} else if !database.IsNotFound(err) {
		return err
	}

	return database.GetDB().Delete(&model.User{}, "id = ?", user.Id).Error
}

// CheckUser verifies a username/password pair, returning nil on any
// failure.
func (s *UserService) CheckUser(username string, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil
	}
	return user
}

// ChangePassword verifies the old password, checks the new/confirm pair,
// stores the new hash, then revokes the caller's refresh token. Revocation
// is best-effort: on failure the password change stands and
// ErrRevocationFailed is returned so the caller learns about it.
func (s *UserService) ChangePassword(user *model.User, oldPassword, newPassword, confirm, refreshToken string, tokenService *token.Service) error {
	if !crypto.CheckPasswordHash(user.Password, oldPassword) {
		return validation.Errors{"oldPassword": "Old password is incorrect."}
	}
	if err := validation.Collect(validation.NonEmpty("newPassword", newPassword)); err != nil {
		return err
	}
	if newPassword != confirm {
		return validation.Errors{"confirmPassword": "Passwords do not match."}
	}

	hash, err := crypto.HashPasswordAsBcrypt(newPassword)
	if err != nil {
		return err
	}
	err = database.GetDB().Model(model.User{}).
		Where("id = ?", user.Id).
		Update("password", hash).Error
	if err != nil {
		return err
	}

	if refreshToken != "" {
		if err := tokenService.Revoke(refreshToken); err != nil {
			logger.Warningf("password changed for %s but refresh token revocation failed: %v", user.Username, err)
			return ErrRevocationFailed
		}
	}
	return nil
}
