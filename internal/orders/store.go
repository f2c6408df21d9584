package orders

import (
	"fmt"
	"strconv"

	"shackchat/internal/cart"
	"shackchat/internal/models"

	"github.com/jinzhu/gorm"
)

// GormStore persists finalized orders to the database
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates an order store backed by the given database
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// SaveOrder writes a finalized cart and returns the new order's identifier.
// On failure the caller must leave the cart untouched.
func (s *GormStore) SaveOrder(lines []cart.Line, total float64) (string, error) {
	if len(lines) == 0 {
		return "", fmt.Errorf("cannot save an empty order")
	}

	order := models.SavedOrder{
		Status: string(models.OrderStatusPending),
		Total:  total,
	}
	for _, line := range lines {
		order.Items = append(order.Items, models.SavedOrderItem{
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	if err := s.db.Create(&order).Error; err != nil {
		return "", fmt.Errorf("failed to save order: %w", err)
	}
	return strconv.FormatUint(uint64(order.ID), 10), nil
}
