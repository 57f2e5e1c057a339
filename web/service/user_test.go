package service

import (
	"context"
	"strings"
	"testing"

	"edu-center/database"
	"edu-center/database/model"
	"edu-center/validation"
	"edu-center/web/token"

	"github.com/stretchr/testify/assert"
)

func TestUserCreatePhoneRule(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}

	// non-admin without a phone is rejected
	student := &model.User{Username: "petr", Role: model.RoleStudent}
	err := userService.Create(student, "secret123")
	assert.Error(t, err)
	fieldErrors, ok := err.(validation.Errors)
	assert.True(t, ok)
	assert.Contains(t, fieldErrors, "phoneNumber")

	// admin without a phone is fine
	admin := &model.User{Username: "second-admin", Role: model.RoleAdmin}
	err = userService.Create(admin, "secret123")
	assert.NoError(t, err)

	// malformed phone is rejected for any role
	admin2 := &model.User{Username: "third-admin", Role: model.RoleAdmin, PhoneNumber: "12345"}
	err = userService.Create(admin2, "secret123")
	assert.Error(t, err)
}

func TestUserStaffFlagDerivedFromRole(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}

	// input staff flag is ignored for non-admins
	student := &model.User{
		Username:    "sveta",
		Role:        model.RoleStudent,
		PhoneNumber: "+375291234567",
		IsStaff:     true,
	}
	err := userService.Create(student, "secret123")
	assert.NoError(t, err)
	stored, err := userService.Get(student.Id)
	assert.NoError(t, err)
	assert.False(t, stored.IsStaff)

	// promoting to admin flips the flag on
	adminRole := model.RoleAdmin
	updated, err := userService.Update(student.Id, UserPatch{Role: &adminRole})
	assert.NoError(t, err)
	assert.True(t, updated.IsStaff)

	// and demoting flips it back off
	studentRole := model.RoleStudent
	updated, err = userService.Update(student.Id, UserPatch{Role: &studentRole})
	assert.NoError(t, err)
	assert.False(t, updated.IsStaff)
}

func TestUserUpdateRejectsInvalidRole(t *testing.T) {
	setup()
	defer teardown()

	user := mustCreateUser(t, "vera", model.RoleStudent)

	badRole := model.Role("moderator")
	_, err := (&UserService{}).Update(user.Id, UserPatch{Role: &badRole})
	assert.Error(t, err)
	fieldErrors, ok := err.(validation.Errors)
	assert.True(t, ok)
	assert.Contains(t, fieldErrors, "role")
}

func TestCheckUser(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	user := mustCreateUser(t, "oleg", model.RoleStudent)

	found := userService.CheckUser("oleg", "secret123")
	assert.NotNil(t, found)
	assert.Equal(t, user.Id, found.Id)

	assert.Nil(t, userService.CheckUser("oleg", "wrong"))
	assert.Nil(t, userService.CheckUser("nobody", "secret123"))
}

func TestChangePassword(t *testing.T) {
	setup()
	defer teardown()

	userService := UserService{}
	tokenService := token.NewService()
	user := mustCreateUser(t, "masha", model.RoleStudent)

	pair, err := tokenService.Issue(user)
	assert.NoError(t, err)

	// wrong old password
	err = userService.ChangePassword(user, "wrong", "newpass123", "newpass123", pair.RefreshToken, tokenService)
	assert.Error(t, err)
	fieldErrors, ok := err.(validation.Errors)
	assert.True(t, ok)
	assert.Contains(t, fieldErrors, "oldPassword")

	// confirmation mismatch
	err = userService.ChangePassword(user, "secret123", "newpass123", "different", pair.RefreshToken, tokenService)
	assert.Error(t, err)
	fieldErrors, ok = err.(validation.Errors)
	assert.True(t, ok)
	assert.Contains(t, fieldErrors, "confirmPassword")

	// success revokes the refresh token
	err = userService.ChangePassword(user, "secret123", "newpass123", "newpass123", pair.RefreshToken, tokenService)
	assert.NoError(t, err)

	_, err = tokenService.VerifyRefresh(pair.RefreshToken)
	assert.ErrorIs(t, err, token.ErrRevokedToken)

	assert.NotNil(t, userService.CheckUser("masha", "newpass123"))
	assert.Nil(t, userService.CheckUser("masha", "secret123"))
}

func TestUserDeleteCascadesTeacherProfile(t *testing.T) {
	setup()
	defer teardown()

	store := newMemStore()
	userService := UserService{}
	teacherInfoService := NewTeacherInfoService(store)

	info := mustCreateTeacherProfile(t, store, "anna")

	certData := strings.NewReader("certificate bytes")
	cert, err := NewCertificateService(store).Create(
		context.Background(), info.Id, certData, certData.Size(), "diploma.pdf", "application/pdf")
	assert.NoError(t, err)
	assert.True(t, store.has(cert.FileRef))

	err = userService.Delete(info.UserId, teacherInfoService)
	assert.NoError(t, err)

	_, err = userService.Get(info.UserId)
	assert.Error(t, err)
	assert.True(t, database.IsNotFound(err))

	_, err = teacherInfoService.Get(info.Id)
	assert.True(t, database.IsNotFound(err))
	assert.False(t, store.has(cert.FileRef))
}
