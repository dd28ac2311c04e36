package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"asg-backend-V2.0/internal/service"
)

type ReportController struct {
	ReportService service.ReportService
}

func NewReportController(reportService service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

func (rc *ReportController) DownloadScorecard(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("project_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}
	path, err := rc.ReportService.GenerateScorecard(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.FileAttachment(path, "asg_scorecard.pdf")
}
