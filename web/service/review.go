package service

import (
	"edu-center/database"
	"edu-center/database/model"
	"edu-center/validation"
)

type ReviewService struct{}

type ReviewPatch struct {
	Author  *string
	Content *string
}

func (s *ReviewService) List(courseId string) ([]model.Review, error) {
	db := database.GetDB()
	query := db.Order("created_at desc")
	if courseId != "" {
		query = query.Where("course_id = ?", courseId)
	}
	var reviews []model.Review
	err := query.Find(&reviews).Error
	return reviews, err
}

func (s *ReviewService) Get(id string) (*model.Review, error) {
	review := &model.Review{}
	if err := database.GetDB().First(review, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) validate(review *model.Review) error {
	errs := validation.Collect(
		validation.NonEmpty("author", review.Author),
		validation.NonEmpty("content", review.Content),
		validation.NonEmpty("courseId", review.CourseId),
	)
	if errs != nil {
		return errs
	}

	course := &model.Course{}
	if err := database.GetDB().First(course, "id = ?", review.CourseId).Error; err != nil {
		if database.IsNotFound(err) {
			return validation.Errors{"courseId": "Course not found."}
		}
		return err
	}
	return nil
}

func (s *ReviewService) Create(review *model.Review) error {
	if err := s.validate(review); err != nil {
		return err
	}
	return database.GetDB().Create(review).Error
}

func (s *ReviewService) Update(id string, patch ReviewPatch) (*model.Review, error) {
	review, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Author != nil {
		review.Author = *patch.Author
	}
	if patch.Content != nil {
		review.Content = *patch.Content
	}

	if err := s.validate(review); err != nil {
		return nil, err
	}
	if err := database.GetDB().Save(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return database.GetDB().Delete(&model.Review{}, "id = ?", id).Error
}
