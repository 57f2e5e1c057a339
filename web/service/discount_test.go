package service

import (
	"testing"

	"edu-center/database"
	"edu-center/database/model"
	"edu-center/validation"

	"github.com/stretchr/testify/assert"
)

func TestDiscountPercentBounds(t *testing.T) {
	setup()
	defer teardown()

	discountService := DiscountService{}

	for _, percent := range []int{0, 50, 99} {
		err := discountService.Create(&model.Discount{Percent: percent, Description: "seasonal"})
		assert.NoError(t, err, "percent %d should pass", percent)
	}

	for _, percent := range []int{-1, 100, 150} {
		err := discountService.Create(&model.Discount{Percent: percent, Description: "seasonal"})
		assert.Error(t, err, "percent %d should fail", percent)
		fieldErrors, ok := err.(validation.Errors)
		assert.True(t, ok)
		assert.Contains(t, fieldErrors, "percent")
	}
}

func TestDiscountLifecycle(t *testing.T) {
	setup()
	defer teardown()

	discountService := DiscountService{}

	discount := &model.Discount{Percent: 15, Description: "early bird"}
	assert.NoError(t, discountService.Create(discount))

	// description may not be blanked out
	blank := ""
	_, err := discountService.Update(discount.Id, DiscountPatch{Description: &blank})
	assert.Error(t, err)

	newPercent := 20
	updated, err := discountService.Update(discount.Id, DiscountPatch{Percent: &newPercent})
	assert.NoError(t, err)
	assert.Equal(t, 20, updated.Percent)
	assert.Equal(t, "early bird", updated.Description)

	assert.NoError(t, discountService.Delete(discount.Id))
	_, err = discountService.Get(discount.Id)
	assert.True(t, database.IsNotFound(err))
}
