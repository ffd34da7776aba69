package entity

import (
	"gorm.io/gorm"
)

// Price is kept as text ("10.00") the way the menu is entered; totals are
// computed in cents, see utils.ParsePrice.
type MenuItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Course      string `gorm:"not null" json:"course"`
	Description string `json:"description"`
	Price       string `gorm:"not null;size:8" json:"price"`

	CartItems  []CartItem  `json:"-"`
	OrderItems []OrderItem `json:"-"`
}
