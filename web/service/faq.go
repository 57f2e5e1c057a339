package service

import (
	"edu-center/database"
	"edu-center/database/model"
	"edu-center/validation"
)

type FaqService struct{}

type FaqPatch struct {
	Title       *string
	Description *string
	CategoryId  *string
}

func (s *FaqService) List(categoryId string) ([]model.Faq, error) {
	db := database.GetDB()
	query := db.Preload("Category")
	if categoryId != "" {
		query = query.Where("category_id = ?", categoryId)
	}
	var faqs []model.Faq
	err := query.Find(&faqs).Error
	return faqs, err
}

func (s *FaqService) Get(id string) (*model.Faq, error) {
	faq := &model.Faq{}
	if err := database.GetDB().Preload("Category").First(faq, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *FaqService) validate(faq *model.Faq) error {
	errs := validation.Collect(
		validation.NonEmpty("title", faq.Title),
		validation.NonEmpty("description", faq.Description),
		validation.NonEmpty("categoryId", faq.CategoryId),
	)
	if errs != nil {
		return errs
	}

	category := &model.FaqCategory{}
	if err := database.GetDB().First(category, "id = ?", faq.CategoryId).Error; err != nil {
		if database.IsNotFound(err) {
			return validation.Errors{"categoryId": "Category not found."}
		}
		return err
	}
	return nil
}

func (s *FaqService) Create(faq *model.Faq) error {
	if err := s.validate(faq); err != nil {
		return err
	}
	return database.GetDB().Create(faq).Error
}

func (s *FaqService) Update(id string, patch FaqPatch) (*model.Faq, error) {
	faq, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		faq.Title = *patch.Title
	}
	if patch.Description != nil {
		faq.Description = *patch.Description
	}
	if patch.CategoryId != nil {
		faq.CategoryId = *patch.CategoryId
		faq.Category = nil
	}

	if err := s.validate(faq); err != nil {
		return nil, err
	}
	if err := database.GetDB().Save(faq).Error; err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *FaqService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return database.GetDB().Delete(&model.Faq{}, "id = ?", id).Error
}
