package menu

import (
	"shackchat/internal/models"

	"github.com/jinzhu/gorm"
)

// Store is the read-only query interface over the menu collaborator
type Store interface {
	AllItems() ([]models.MenuItem, error)
	ItemsByCategory(category string) ([]models.MenuItem, error)
}

// GormStore implements Store against the SQLite database
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new menu store backed by the given database
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AllItems returns every menu item in the store
func (s *GormStore) AllItems() ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ItemsByCategory returns the menu items for a single category
func (s *GormStore) ItemsByCategory(category string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Where("category = ?", category).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
