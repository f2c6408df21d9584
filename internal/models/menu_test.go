package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateMenuItem(t *testing.T) {
	valid := &MenuItem{Name: "ShackBurger", Category: "Burgers", Price: 6.99, Calories: 500}
	assert.NoError(t, ValidateMenuItem(valid))

	assert.Error(t, ValidateMenuItem(&MenuItem{Name: "", Price: 1}))
	assert.Error(t, ValidateMenuItem(&MenuItem{Name: "Fries", Price: -1}))
	assert.Error(t, ValidateMenuItem(&MenuItem{Name: "Fries", Price: 3.99, Calories: -5}))

	free := &MenuItem{Name: "Water", Category: "Drinks", Price: 0, Calories: 0}
	assert.NoError(t, ValidateMenuItem(free))
}

func TestIsInCategory(t *testing.T) {
	item := &MenuItem{Name: "Chicken Shack", Category: "Chicken"}
	assert.True(t, item.IsInCategory(MenuCategoryChicken))
	assert.False(t, item.IsInCategory(MenuCategoryBurgers))
}
