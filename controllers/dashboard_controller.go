package controllers

import (
	"github.com/ja-cob-s/cantina/pkg/resp"
	"github.com/ja-cob-s/cantina/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	svc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{svc: svc}
}

// GET /admin/dashboard
func (dc *DashboardController) Show(c *gin.Context) {
	dash, err := dc.svc.Build()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dash)
}
