package services

import (
	"errors"

	"github.com/ja-cob-s/cantina/entity"
	"github.com/ja-cob-s/cantina/repository"
	"github.com/ja-cob-s/cantina/utils"
	"gorm.io/gorm"
)

const (
	// DeliveryFeeCents is the flat fee, charged only on non-empty carts.
	DeliveryFeeCents = 299
	// TaxPercent applies to subtotal plus delivery fee.
	TaxPercent = 7
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type CartSummary struct {
	Items    []entity.CartLine
	Subtotal int64
	Fee      int64
	Tax      int64
	Total    int64
}

// Totals computes subtotal/fee/tax/total in cents from cart_view lines.
func Totals(lines []entity.CartLine) (subtotal, fee, tax, total int64, err error) {
	for _, line := range lines {
		cents, perr := utils.ParsePrice(line.Price)
		if perr != nil {
			return 0, 0, 0, 0, perr
		}
		subtotal += cents * int64(line.Quantity)
	}
	if subtotal > 0 {
		fee = DeliveryFeeCents
	}
	tax = ((subtotal+fee)*TaxPercent + 50) / 100
	total = subtotal + fee + tax
	return subtotal, fee, tax, total, nil
}

func (s *CartService) Summary(userID uint) (*CartSummary, error) {
	lines, err := s.CartRepo.Lines(userID)
	if err != nil {
		return nil, err
	}
	sub, fee, tax, total, err := Totals(lines)
	if err != nil {
		return nil, err
	}
	return &CartSummary{Items: lines, Subtotal: sub, Fee: fee, Tax: tax, Total: total}, nil
}

// Add puts one unit of the item in the cart, merging with an existing row.
func (s *CartService) Add(userID, menuItemID uint) (*entity.MenuItem, error) {
	item, err := s.MenuRepo.FindByID(menuItemID)
	if err != nil {
		return nil, ErrMenuItemNotFound
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.AddItem(tx, userID, menuItemID)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) UpdateQty(userID, menuItemID uint, qty int) error {
	if _, err := s.CartRepo.Find(userID, menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotInCart
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpdateQty(tx, userID, menuItemID, qty)
	})
}

func (s *CartService) Remove(userID, menuItemID uint) (*entity.MenuItem, error) {
	item, err := s.MenuRepo.FindByID(menuItemID)
	if err != nil {
		return nil, ErrMenuItemNotFound
	}
	if _, err := s.CartRepo.Find(userID, menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotInCart
		}
		return nil, err
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, userID, menuItemID)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}
