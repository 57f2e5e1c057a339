package service

import (
	"context"
	"io"
	"os"
	"testing"

	"edu-center/database"
	"edu-center/database/model"
	"edu-center/logger"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func setup() {
	logger.InitLogger(logging.DEBUG)
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

// memStore is an in-memory stand-in for blob storage.
type memStore struct {
	files map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{files: map[string][]byte{}}
}

func (m *memStore) Store(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.files[key] = data
	return key, nil
}

func (m *memStore) Resolve(ref string) string {
	return "http://files.local/" + ref
}

func (m *memStore) Delete(ctx context.Context, ref string) error {
	delete(m.files, ref)
	return nil
}

func (m *memStore) has(ref string) bool {
	_, ok := m.files[ref]
	return ok
}

func mustCreateUser(t *testing.T, username string, role model.Role) *model.User {
	t.Helper()
	user := &model.User{
		Username:    username,
		Role:        role,
		PhoneNumber: "+375291234567",
	}
	userService := UserService{}
	err := userService.Create(user, "secret123")
	assert.NoError(t, err)
	return user
}

func mustCreateCategory(t *testing.T, name string) *model.CourseCategory {
	t.Helper()
	category := &model.CourseCategory{Name: name}
	err := database.GetDB().Create(category).Error
	assert.NoError(t, err)
	return category
}

func mustCreateCourse(t *testing.T, store *memStore, title string) *model.Course {
	t.Helper()
	category := mustCreateCategory(t, title+" category")
	course := &model.Course{Title: title, CategoryId: category.Id}
	err := NewCourseService(store).Create(course, nil)
	assert.NoError(t, err)
	return course
}

func mustCreateTeacherProfile(t *testing.T, store *memStore, username string) *model.TeacherInfo {
	t.Helper()
	user := mustCreateUser(t, username, model.RoleTeacher)
	info := &model.TeacherInfo{
		UserId:     user.Id,
		Education:  "BSU, Applied Mathematics",
		Experience: "5 years of teaching",
	}
	err := NewTeacherInfoService(store).Create(info)
	assert.NoError(t, err)
	return info
}
