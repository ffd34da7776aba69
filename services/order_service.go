package services

import (
	"time"

	"github.com/ja-cob-s/cantina/entity"
	"github.com/ja-cob-s/cantina/repository"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
	Delivery *DeliveryService
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
	delivery *DeliveryService,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo, Delivery: delivery}
}

type PlacedOrder struct {
	OrderID      uint
	OrderTime    time.Time
	DeliveryTime time.Time
	Subtotal     int64
	Fee          int64
	Tax          int64
	Total        int64
	MapURL       string
}

// PlaceOrder converts the cart into an order. The order row, its items, and
// the cart deletion all commit in one transaction, so a failure part way
// through leaves the cart untouched.
func (s *OrderService) PlaceOrder(userID uint) (*PlacedOrder, error) {
	lines, err := s.CartRepo.Lines(userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user.Address == nil {
		return nil, ErrNoAddress
	}
	destination := user.Address.OneLine()

	travel, err := s.Delivery.Travel(destination)
	if err != nil {
		return nil, err
	}
	if travel.DistanceMeters > MaxDeliveryDistance {
		return nil, ErrAddressOutOfRange
	}

	subtotal, fee, tax, total, err := Totals(lines)
	if err != nil {
		return nil, err
	}

	orderTime := time.Now()
	deliveryTime := orderTime.Add(time.Duration(PrepTimeSeconds+travel.DurationSeconds) * time.Second)

	order := entity.Order{
		UserID:       userID,
		OrderTime:    orderTime,
		DeliveryTime: deliveryTime,
		Subtotal:     subtotal,
		DeliveryFee:  fee,
		Tax:          tax,
		Total:        total,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, line := range lines {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: line.MenuItemID,
				Quantity:   line.Quantity,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
		}
		return s.CartRepo.Clear(tx, userID)
	})
	if err != nil {
		return nil, err
	}

	return &PlacedOrder{
		OrderID:      order.ID,
		OrderTime:    orderTime,
		DeliveryTime: deliveryTime,
		Subtotal:     subtotal,
		Fee:          fee,
		Tax:          tax,
		Total:        total,
		MapURL:       s.Delivery.MapURL(destination),
	}, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Repo.ListByUser(userID)
}

type OrderDetail struct {
	Order *entity.Order
	Lines []entity.OrderLine
}

func (s *OrderService) Detail(orderID uint) (*OrderDetail, error) {
	order, err := s.Repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	orderLines, err := s.Repo.Lines(orderID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: order, Lines: orderLines}, nil
}
