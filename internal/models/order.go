package models

import (
	"github.com/jinzhu/gorm"
)

// SavedOrder represents a finalized order persisted at checkout
type SavedOrder struct {
	gorm.Model
	Items  []SavedOrderItem `gorm:"foreignkey:OrderID"`
	Status string
	Total  float64
}

// SavedOrderItem represents a single line of a finalized order
type SavedOrderItem struct {
	gorm.Model
	OrderID   uint
	Name      string
	UnitPrice float64
	Quantity  int
}

// OrderStatus represents the possible states of a saved order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)
