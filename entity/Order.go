package entity

import (
	"time"

	"gorm.io/gorm"
)

// Orders are immutable once placed.
type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	OrderTime    time.Time `json:"orderTime"`
	DeliveryTime time.Time `json:"deliveryTime"`

	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`

	// preload only on detail
	OrderItems []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
