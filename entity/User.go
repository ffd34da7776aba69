package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Admin    bool   `gorm:"not null;default:false" json:"admin"`

	AddressID *uint    `json:"addressId"`
	Address   *Address `json:"address,omitempty"`

	// preload only when needed
	CartItems []CartItem `json:"-"`
	Orders    []Order    `json:"-"`
}
