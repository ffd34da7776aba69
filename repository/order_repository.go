package repository

import (
	"github.com/ja-cob-s/cantina/entity"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) ListByUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("user_id = ?", userID).Order("order_time DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// Lines reads an order's items through order_view.
func (r *OrderRepository) Lines(orderID uint) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.DB.Where("order_id = ?", orderID).Find(&lines).Error
	return lines, err
}
