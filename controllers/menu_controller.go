package controllers

import (
	"errors"
	"strconv"

	"github.com/ja-cob-s/cantina/entity"
	"github.com/ja-cob-s/cantina/pkg/resp"
	"github.com/ja-cob-s/cantina/services"
	"github.com/ja-cob-s/cantina/utils"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{svc: svc}
}

type menuItemJSON struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Course      string `json:"course"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

func toMenuItemJSON(m *entity.MenuItem) menuItemJSON {
	return menuItemJSON{
		ID:          m.ID,
		Name:        m.Name,
		Course:      m.Course,
		Description: m.Description,
		Price:       m.Price,
	}
}

// GET /menu — the main menu page data: all items plus the top sellers.
func (mc *MenuController) Show(c *gin.Context) {
	items, err := mc.svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	top, err := mc.svc.TopItems()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "topItems": top})
}

// GET /menu/json
func (mc *MenuController) ListJSON(c *gin.Context) {
	items, err := mc.svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	out := make([]menuItemJSON, 0, len(items))
	for i := range items {
		out = append(out, toMenuItemJSON(&items[i]))
	}
	resp.OK(c, gin.H{"menuItems": out})
}

// GET /menu/:id/json
func (mc *MenuController) ItemJSON(c *gin.Context) {
	id := paramID(c, "id")
	item, err := mc.svc.Get(id)
	if err != nil {
		resp.NotFound(c, services.ErrMenuItemNotFound.Error())
		return
	}
	resp.OK(c, gin.H{"menuItem": toMenuItemJSON(item)})
}

type CreateMenuItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Course      string `json:"course" binding:"required"`
	Description string `json:"description"`
	Price       string `json:"price" binding:"required"`
}

// POST /admin/menu
func (mc *MenuController) Create(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if _, err := utils.ParsePrice(req.Price); err != nil {
		resp.BadRequest(c, "malformed price")
		return
	}
	item, err := mc.svc.Create(req.Name, req.Course, req.Description, req.Price)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

type UpdateMenuItemRequest struct {
	Name        string `json:"name"`
	Course      string `json:"course"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// PATCH /admin/menu/:id — only submitted, non-empty fields overwrite.
func (mc *MenuController) Update(c *gin.Context) {
	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Price != "" {
		if _, err := utils.ParsePrice(req.Price); err != nil {
			resp.BadRequest(c, "malformed price")
			return
		}
	}
	item, err := mc.svc.Update(paramID(c, "id"), req.Name, req.Course, req.Description, req.Price)
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/menu/:id
func (mc *MenuController) Delete(c *gin.Context) {
	item, err := mc.svc.Delete(paramID(c, "id"))
	if err != nil {
		if errors.Is(err, services.ErrMenuItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "'" + item.Name + "' deleted"})
}

func paramID(c *gin.Context, name string) uint {
	id, _ := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(id)
}
