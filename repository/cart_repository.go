package repository

import (
	"errors"

	"github.com/ja-cob-s/cantina/entity"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// AddItem inserts a quantity-1 row or bumps the existing one, keeping the
// one-row-per-(user, item) invariant.
func (r *CartRepository) AddItem(tx *gorm.DB, userID, menuItemID uint) error {
	var exist entity.CartItem
	err := tx.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		First(&exist).Error
	if err == nil {
		return tx.Model(&exist).Update("quantity", exist.Quantity+1).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return tx.Create(&entity.CartItem{UserID: userID, MenuItemID: menuItemID, Quantity: 1}).Error
}

func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, menuItemID uint, qty int) error {
	if qty <= 0 {
		return r.RemoveItem(tx, userID, menuItemID)
	}
	return tx.Model(&entity.CartItem{}).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Update("quantity", qty).Error
}

// Cart rows are deleted for real (Unscoped): a soft-deleted row would trip
// the (user_id, menu_item_id) unique index when the item is re-added.
func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, menuItemID uint) error {
	return tx.Unscoped().Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) Find(userID, menuItemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.DB.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) Items(userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := r.DB.Where("user_id = ?", userID).Find(&items).Error
	return items, err
}

// Lines reads the cart through cart_view (item name and price joined in).
func (r *CartRepository) Lines(userID uint) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	err := r.DB.Where("user_id = ?", userID).Find(&lines).Error
	return lines, err
}

func (r *CartRepository) Clear(tx *gorm.DB, userID uint) error {
	return tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
