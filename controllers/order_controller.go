package controllers

import (
	"errors"

	"github.com/ja-cob-s/cantina/middlewares"
	"github.com/ja-cob-s/cantina/pkg/resp"
	"github.com/ja-cob-s/cantina/services"
	"github.com/ja-cob-s/cantina/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{svc: svc}
}

// POST /cart/checkout
func (oc *OrderController) Checkout(c *gin.Context) {
	placed, err := oc.svc.PlaceOrder(utils.CurrentUserID(c))
	if err != nil {
		middlewares.RecordOrderOperation("checkout", false)
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrNoAddress),
			errors.Is(err, services.ErrAddressOutOfRange),
			errors.Is(err, services.ErrNoRoute):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	middlewares.RecordOrderOperation("checkout", true)
	resp.Created(c, gin.H{
		"orderId":      placed.OrderID,
		"orderTime":    placed.OrderTime,
		"deliveryTime": placed.DeliveryTime,
		"subtotal":     utils.FormatCents(placed.Subtotal),
		"fee":          utils.FormatCents(placed.Fee),
		"tax":          utils.FormatCents(placed.Tax),
		"total":        utils.FormatCents(placed.Total),
		"mapUrl":       placed.MapURL,
	})
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	orders, err := oc.svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id — owner or admin only.
func (oc *OrderController) Detail(c *gin.Context) {
	detail, err := oc.svc.Detail(paramID(c, "id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if detail.Order.UserID != utils.CurrentUserID(c) && !utils.IsAdmin(c) {
		resp.Forbidden(c, "forbidden")
		return
	}
	resp.OK(c, gin.H{"order": detail.Order, "items": detail.Lines})
}
