package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrNotInCart          = errors.New("item not in cart")
	ErrEmptyCart          = errors.New("no items in order")
	ErrNoAddress          = errors.New("no delivery address on file")
	ErrAddressOutOfRange  = errors.New("address is invalid or outside delivery radius")
	ErrNoRoute            = errors.New("no route to address")
)
