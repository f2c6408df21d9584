package database

import (
	"shackchat/internal/models"

	"github.com/jinzhu/gorm"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

var DB *gorm.DB

// InitDB initializes the database connection and migrates the schema
func InitDB(dbPath string) error {
	var err error
	DB, err = gorm.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	DB.AutoMigrate(
		&models.MenuItem{},
		&models.SavedOrder{},
		&models.SavedOrderItem{},
	)

	seedMenu(DB)
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// seedMenu loads the reference menu into an empty menu_items table so a fresh
// database starts in a usable state.
func seedMenu(db *gorm.DB) {
	var count int64
	db.Model(&models.MenuItem{}).Count(&count)
	if count > 0 {
		return
	}

	for _, item := range ReferenceMenu() {
		db.Create(&models.MenuItem{
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price,
			Calories: item.Calories,
		})
	}
}

// ReferenceMenu returns the built-in menu used to seed an empty database and
// as the fallback when the menu store is unreachable.
func ReferenceMenu() []models.MenuItem {
	return []models.MenuItem{
		{Name: "ShackBurger", Price: 6.99, Calories: 500, Category: "Burgers"},
		{Name: "Cheeseburger", Price: 6.49, Calories: 440, Category: "Burgers"},
		{Name: "Hamburger", Price: 6.49, Calories: 370, Category: "Burgers"},
		{Name: "Avocado Bacon Burger", Price: 9.49, Calories: 610, Category: "Burgers"},
		{Name: "SmokeShack", Price: 8.49, Calories: 570, Category: "Burgers"},
		{Name: "Bacon Cheeseburger", Price: 11.49, Calories: 760, Category: "Burgers"},
		{Name: "Chicken Shack", Price: 7.99, Calories: 590, Category: "Chicken"},
		{Name: "Fries", Price: 3.99, Calories: 470, Category: "Fries"},
		{Name: "Cheese Fries", Price: 4.99, Calories: 710, Category: "Fries"},
		{Name: "Vanilla Shake", Price: 5.99, Calories: 680, Category: "Milkshakes"},
		{Name: "Chocolate Shake", Price: 5.99, Calories: 750, Category: "Milkshakes"},
		{Name: "Strawberry Shake", Price: 5.99, Calories: 690, Category: "Milkshakes"},
		{Name: "Shack-made Lemonade", Price: 3.99, Calories: 220, Category: "Drinks"},
		{Name: "Iced Tea", Price: 2.99, Calories: 0, Category: "Drinks"},
		{Name: "Topo Chico", Price: 3.49, Calories: 0, Category: "Drinks"},
	}
}
