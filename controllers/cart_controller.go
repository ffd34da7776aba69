package controllers

import (
	"errors"
	"fmt"

	"github.com/ja-cob-s/cantina/entity"
	"github.com/ja-cob-s/cantina/middlewares"
	"github.com/ja-cob-s/cantina/pkg/resp"
	"github.com/ja-cob-s/cantina/services"
	"github.com/ja-cob-s/cantina/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cart     *services.CartService
	address  *services.AddressService
	delivery *services.DeliveryService
	auth     *services.AuthService
}

func NewCartController(
	cart *services.CartService,
	address *services.AddressService,
	delivery *services.DeliveryService,
	auth *services.AuthService,
) *CartController {
	return &CartController{cart: cart, address: address, delivery: delivery, auth: auth}
}

// GET /cart
func (cc *CartController) Show(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	summary, err := cc.cart.Summary(userID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := gin.H{
		"items":    summary.Items,
		"subtotal": utils.FormatCents(summary.Subtotal),
		"fee":      utils.FormatCents(summary.Fee),
		"tax":      utils.FormatCents(summary.Tax),
		"total":    utils.FormatCents(summary.Total),
	}

	// Delivery estimate only when the user has a saved address and the
	// directions lookup succeeds.
	if user, err := cc.auth.GetProfile(userID); err == nil && user.Address != nil {
		if secs, err := cc.delivery.EstimateSeconds(user.Address.OneLine()); err == nil {
			out["deliveryEstimate"] = fmt.Sprintf("%d minutes", secs/60)
		}
	}

	resp.OK(c, out)
}

// POST /cart/items/:menuId
func (cc *CartController) Add(c *gin.Context) {
	item, err := cc.cart.Add(utils.CurrentUserID(c), paramID(c, "menuId"))
	if err != nil {
		middlewares.RecordOrderOperation("cart_add", false)
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	middlewares.RecordOrderOperation("cart_add", true)
	resp.OK(c, gin.H{"message": item.Name + " added to order!"})
}

type UpdateQtyRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// PATCH /cart/items/:menuId
func (cc *CartController) UpdateQty(c *gin.Context) {
	var req UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := cc.cart.UpdateQty(utils.CurrentUserID(c), paramID(c, "menuId"), req.Quantity); err != nil {
		if errors.Is(err, services.ErrNotInCart) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "quantity updated"})
}

// DELETE /cart/items/:menuId
func (cc *CartController) Remove(c *gin.Context) {
	item, err := cc.cart.Remove(utils.CurrentUserID(c), paramID(c, "menuId"))
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) || errors.Is(err, services.ErrNotInCart) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": item.Name + " removed from order!"})
}

type UpdateAddressRequest struct {
	Street1 string `json:"street1" binding:"required"`
	Street2 string `json:"street2"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required,len=2"`
	ZipCode string `json:"zipCode" binding:"required,len=5,numeric"`
}

// PUT /cart/address
func (cc *CartController) UpdateAddress(c *gin.Context) {
	var req UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	addr := &entity.Address{
		Street1: req.Street1,
		Street2: req.Street2,
		City:    req.City,
		State:   req.State,
		ZipCode: req.ZipCode,
	}
	if err := cc.address.Update(utils.CurrentUserID(c), addr); err != nil {
		if errors.Is(err, services.ErrAddressOutOfRange) || errors.Is(err, services.ErrNoRoute) {
			resp.BadRequest(c, services.ErrAddressOutOfRange.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "address saved"})
}
