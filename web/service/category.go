package service

import (
	"edu-center/database"
	"edu-center/database/model"
	"edu-center/validation"
)

type CourseCategoryService struct{}

func (s *CourseCategoryService) List() ([]model.CourseCategory, error) {
	var categories []model.CourseCategory
	err := database.GetDB().Order("name").Find(&categories).Error
	return categories, err
}

func (s *CourseCategoryService) Get(id string) (*model.CourseCategory, error) {
	category := &model.CourseCategory{}
	if err := database.GetDB().First(category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CourseCategoryService) Create(category *model.CourseCategory) error {
	if err := validation.Collect(validation.NonEmpty("name", category.Name)); err != nil {
		return err
	}
	return database.GetDB().Create(category).Error
}

func (s *CourseCategoryService) Update(id string, name string) (*model.CourseCategory, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := validation.Collect(validation.NonEmpty("name", name)); err != nil {
		return nil, err
	}
	category.Name = name
	if err := database.GetDB().Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CourseCategoryService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return database.GetDB().Delete(&model.CourseCategory{}, "id = ?", id).Error
}

type FaqCategoryService struct{}

func (s *FaqCategoryService) List() ([]model.FaqCategory, error) {
	var categories []model.FaqCategory
	err := database.GetDB().Order("name").Find(&categories).Error
	return categories, err
}

func (s *FaqCategoryService) Get(id string) (*model.FaqCategory, error) {
	category := &model.FaqCategory{}
	if err := database.GetDB().First(category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (s *FaqCategoryService) Create(category *model.FaqCategory) error {
	if err := validation.Collect(validation.NonEmpty("name", category.Name)); err != nil {
		return err
	}
	return database.GetDB().Create(category).Error
}

func (s *FaqCategoryService) Update(id string, name string) (*model.FaqCategory, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := validation.Collect(validation.NonEmpty("name", name)); err != nil {
		return nil, err
	}
	category.Name = name
	if err := database.GetDB().Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func (s *FaqCategoryService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return database.GetDB().Delete(&model.FaqCategory{}, "id = ?", id).Error
}
