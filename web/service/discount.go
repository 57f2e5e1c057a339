package service

import (
	"edu-center/database"
	"edu-center/database/model"
	"edu-center/validation"
)

type DiscountService struct{}

type DiscountPatch struct {
	Percent     *int
	Description *string
}

func (s *DiscountService) List() ([]model.Discount, error) {
	var discounts []model.Discount
	err := database.GetDB().Find(&discounts).Error
	return discounts, err
}

func (s *DiscountService) Get(id string) (*model.Discount, error) {
	discount := &model.Discount{}
	if err := database.GetDB().First(discount, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return discount, nil
}

func (s *DiscountService) validate(discount *model.Discount) error {
	return validation.Collect(
		validation.Percent(discount.Percent),
		validation.NonEmpty("description", discount.Description),
	)
}

func (s *DiscountService) Create(discount *model.Discount) error {
	if err := s.validate(discount); err != nil {
		return err
	}
	return database.GetDB().Create(discount).Error
}

func (s *DiscountService) Update(id string, patch DiscountPatch) (*model.Discount, error) {
	discount, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if patch.Percent != nil {
		discount.Percent = *patch.Percent
	}
	if patch.Description != nil {
		discount.Description = *patch.Description
	}

	if err := s.validate(discount); err != nil {
		return nil, err
	}
	if err := database.GetDB().Save(discount).Error; err != nil {
		return nil, err
	}
	return discount, nil
}

func (s *DiscountService) Delete(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return database.GetDB().Delete(&model.Discount{}, "id = ?", id).Error
}
