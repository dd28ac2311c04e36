package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"asg-backend-V2.0/internal/model"
	"asg-backend-V2.0/internal/service"
)

type DashboardController struct {
	DashboardService service.DashboardService
}

func NewDashboardController(dashboardService service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

func (dc *DashboardController) GetStats(c *gin.Context) {
	filter := service.StatsFilter{
		Phase:  model.Phase(c.Query("phase")),
		Status: c.Query("status"),
	}
	if filter.Phase != "" && !filter.Phase.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phase filter"})
		return
	}
	stats, err := dc.DashboardService.Stats(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
