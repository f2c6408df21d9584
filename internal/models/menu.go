package models

import (
	"fmt"

	"github.com/jinzhu/gorm"
)

// MenuItem represents a single item on the menu
type MenuItem struct {
	gorm.Model
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Calories int     `json:"calories"`
}

// MenuCategory represents the category of a menu item
type MenuCategory string

const (
	// Menu categories
	MenuCategoryBurgers    MenuCategory = "Burgers"
	MenuCategoryChicken    MenuCategory = "Chicken"
	MenuCategoryFries      MenuCategory = "Fries"
	MenuCategoryMilkshakes MenuCategory = "Milkshakes"
	MenuCategoryDrinks     MenuCategory = "Drinks"
)

// ValidateMenuItem validates a menu item before it is loaded into the catalog
func ValidateMenuItem(item *MenuItem) error {
	if item.Name == "" {
		return fmt.Errorf("menu item name is required")
	}
	if item.Price < 0 {
		return fmt.Errorf("menu item price must not be negative")
	}
	if item.Calories < 0 {
		return fmt.Errorf("menu item calories must not be negative")
	}
	return nil
}

// IsInCategory checks if the item belongs to a specific category
func (mi *MenuItem) IsInCategory(category MenuCategory) bool {
	return mi.Category == string(category)
}
