package entity

import (
	"gorm.io/gorm"
)

// One row per (user, menu item); adding the same item again bumps Quantity.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:idx_cart_user_item" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:idx_cart_user_item" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity int `gorm:"not null" json:"quantity"`
}
