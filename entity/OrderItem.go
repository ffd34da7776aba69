package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity int `gorm:"not null" json:"quantity"`
}
