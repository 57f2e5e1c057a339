package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"edu-center/database"
	"edu-center/database/model"
	"edu-center/logger"
	"edu-center/storage"
	"edu-center/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseService struct {
	store storage.Store
}

func NewCourseService(store storage.Store) *CourseService {
	return &CourseService{store: store}
}

type CoursePatch struct {
	Title        *string
	Description  *string
	Advantages   *string
	Curriculum   *string
	StudyHours   *int
	PriceForOne  *uint
	PriceInGroup *uint
	CategoryId   *string
	TeacherIds   *[]string
}

func (s *CourseService) List(categoryId string) ([]model.Course, error) {
	db := database.GetDB()
	query := db.Preload("Category").Preload("Teachers").Preload("Teachers.User")
	if categoryId != "" {
		query = query.Where("category_id = ?", categoryId)
	}
	var courses []model.Course
	err := query.Find(&courses).Error
	return courses, err
}

func (s *CourseService) Get(id string) (*model.Course, error) {
	db := database.GetDB()
	course := &model.Course{}
	err := db.Preload("Category").
		Preload("Teachers").Preload("Teachers.User").
		Preload("Students").
		First(course, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) validate(course *model.Course) error {
	errs := validation.Collect(
		validation.NonEmpty("title", course.Title),
		validation.NonEmpty("categoryId", course.CategoryId),
	)
	if errs != nil {
		return errs
	}

	category := &model.CourseCategory{}
	if err := database.GetDB().First(category, "id = ?", course.CategoryId).Error; err != nil {
		if database.IsNotFound(err) {
			return validation.Errors{"categoryId": "Category not found."}
		}
		return err
	}
	return nil
}

func (s *CourseService) loadTeachers(db *gorm.DB, teacherIds []string) ([]model.TeacherInfo, error) {
	teachers := make([]model.TeacherInfo, 0, len(teacherIds))
	for _, id := range teacherIds {
		info := model.TeacherInfo{}
		if err := db.First(&info, "id = ?", id).Error; err != nil {
			if database.IsNotFound(err) {
				return nil, validation.Errors{"teacherIds": fmt.Sprintf("Teacher %s not found.", id)}
			}
			return nil, err
		}
		teachers = append(teachers, info)
	}
	return teachers, nil
}

func (s *CourseService) Create(course *model.Course, teacherIds []string) error {
	if err := s.validate(course); err != nil {
		return err
	}

	db := database.GetDB()
	teachers, err := s.loadTeachers(db, teacherIds)
	if err != nil {
		return err
	}
	course.Teachers = teachers
	return db.Create(course).Error
}

func (s *CourseService) Update(id string, patch CoursePatch) (*model.Course, error) {
	course, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		course.Title = *patch.Title
	}
	if patch.Description != nil {
		course.Description = *patch.Description
	}
	if patch.Advantages != nil {
		course.Advantages = *patch.Advantages
	}
	if patch.Curriculum != nil {
		course.Curriculum = *patch.Curriculum
	}
	if patch.StudyHours != nil {
		course.StudyHours = *patch.StudyHours
	}
	if patch.PriceForOne != nil {
		course.PriceForOne = *patch.PriceForOne
	}
	if patch.PriceInGroup != nil {
		course.PriceInGroup = *patch.PriceInGroup
	}
	if patch.CategoryId != nil {
		course.CategoryId = *patch.CategoryId
		course.Category = nil
	}

	if err := s.validate(course); err != nil {
		return nil, err
	}

	db := database.GetDB()
	err = db.Transaction(func(tx *gorm.DB) error {
		if patch.TeacherIds != nil {
			teachers, err := s.loadTeachers(tx, *patch.TeacherIds)
			if err != nil {
				return err
			}
			if err := tx.Model(course).Association("Teachers").Replace(teachers); err != nil {
				return err
			}
		}
		return tx.Omit("Teachers", "Students", "Category").Save(course).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// AddStudents links users to the course's student set. Every user's role
// is checked inside the transaction, before the link is written, so an
// invalid link is never observable even transiently.
func (s *CourseService) AddStudents(courseId string, studentIds []string) error {
	db := database.GetDB()
	course := &model.Course{}
	if err := db.First(course, "id = ?", courseId).Error; err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		students := make([]model.User, 0, len(studentIds))
		for _, id := range studentIds {
			user := model.User{}
			if err := tx.First(&user, "id = ?", id).Error; err != nil {
				if database.IsNotFound(err) {
					return validation.Errors{"students": fmt.Sprintf("User %s not found.", id)}
				}
				return err
			}
			if fieldErr := validation.StudentRole(&user); fieldErr != nil {
				return validation.Collect(fieldErr)
			}
			students = append(students, user)
		}
		return tx.Model(course).Association("Students").Append(students)
	})
}

func (s *CourseService) RemoveStudents(courseId string, studentIds []string) error {
	db := database.GetDB()
	course := &model.Course{}
	if err := db.First(course, "id = ?", courseId).Error; err != nil {
		return err
	}

	students := make([]model.User, 0, len(studentIds))
	for _, id := range studentIds {
		students = append(students, model.User{Id: id})
	}
	return db.Model(course).Association("Students").Delete(students)
}

func (s *CourseService) SetPhoto(ctx context.Context, id string, r io.Reader, size int64, filename, contentType string) (*model.Course, error) {
	course, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("courses/%s%s", uuid.NewString(), path.Ext(filename))
	ref, err := s.store.Store(ctx, key, r, size, contentType)
	if err != nil {
		return nil, err
	}

	oldRef := course.PhotoRef
	course.PhotoRef = ref
	if err := database.GetDB().Model(model.Course{}).Where("id = ?", id).Update("photo_ref", ref).Error; err != nil {
		return nil, err
	}
	if oldRef != "" {
		if err := s.store.Delete(ctx, oldRef); err != nil {
			logger.Warningf("failed to delete old course photo %s: %v", oldRef, err)
		}
	}
	return course, nil
}

// Delete removes the course, its association rows and its photo blob.
func (s *CourseService) Delete(id string) error {
	course, err := s.Get(id)
	if err != nil {
		return err
	}

	if course.PhotoRef != "" {
		if err := s.store.Delete(context.Background(), course.PhotoRef); err != nil {
			logger.Warningf("failed to delete course photo %s: %v", course.PhotoRef, err)
		}
	}

	db := database.GetDB()
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(course).Association("Teachers").Clear(); err != nil {
			return err
		}
		if err := tx.Model(course).Association("Students").Clear(); err != nil {
			return err
		}
		return tx.Delete(&model.Course{}, "id = ?", id).Error
	})
}
