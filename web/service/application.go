package service

import (
	"time"

	"edu-center/database"
	"edu-center/database/model"
	"edu-center/validation"
)

type ApplicationService struct{}

type ApplicationPatch struct {
	Name        *string
	Surname     *string
	PhoneNumber *string
	Email       *string
	StartDate   *time.Time
	CourseId    *string
}

func (s *ApplicationService) List(courseId string) ([]model.Application, error) {
	db := database.GetDB()
	query := db.Preload("Course")
	if courseId != "" {
		query = query.Where("course_id = ?", courseId)
	}
	var applications []model.Application
	err := query.Find(&applications).Error
	return applications, err
}

func (s *ApplicationService) Get(id string) (*model.Application, error) {
	application := &model.Application{}
	if err := database.GetDB().Preload("Course").First(application, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return application, nil
}

func (s *ApplicationService) validate(application *model.Application) error {
	errs := validation.Collect(
		validation.NonEmpty("name", application.Name),
		validation.NonEmpty("surname", application.Surname),
		validation.Phone("phoneNumber", application.PhoneNumber),
		validation.NonEmpty("courseId", application.CourseId),
	)
	if errs != nil {
		return errs
	}

	course := &model.Course{}
	if err := database.GetDB().First(course, "id = ?", application.CourseId).Error; err != nil {
		if database.IsNotFound(err) {
			return validation.Errors{"courseId": "Course not found."}
		}
		return err
	}
	return nil
}

// Create persists an enrollment inquiry. A missing start date defaults to
// the current date; past start dates are rejected.
func (s *ApplicationService) Create(application *model.Application) error {
	if application.StartDate.IsZero() {
		application.StartDate = time.Now()
	}
	if err := validation.Collect(validation.StartDate(application.StartDate, time.Now())); err != nil {
		return err
	}
	if err := s.validate(application); err != nil {
		return err
	}
	return database.GetDB().Create(application).Error
}

func (s *ApplicationService) Update(id string, patch ApplicationPatch) (*model.Application, error) {
	application, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		application.Name = *patch.Name
	}
	if patch.Surname != nil {
		application.Surname = *patch.Surname
	}
	if patch.PhoneNumber != nil {
		application.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Email != nil {
		application.Email = *patch.Email
	}
	if patch.StartDate != nil {
		if err := validation.Collect(validation.StartDate(*patch.StartDate, time.Now())); err != nil {
			return nil, err
		}
		application.StartDate = *patch.StartDate
	}
	if patch.CourseId != nil {
		application.CourseId = *patch.CourseId
		application.Course = nil
	}

	if err := s.validate(application); err != nil {
		return nil, err
	}
	if err := database.GetDB().Save(application).Error; err != nil {
		return nil, err
	}
	return application, nil
}

func (s *ApplicationService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return database.GetDB().Delete(&model.Application{}, "id = ?", id).Error
}
