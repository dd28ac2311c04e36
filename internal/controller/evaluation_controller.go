package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"asg-backend-V2.0/internal/model"
	"asg-backend-V2.0/internal/scoring"
	"asg-backend-V2.0/internal/service"
)

type EvaluationController struct {
	EvaluationService service.EvaluationService
}

func NewEvaluationController(evaluationService service.EvaluationService) *EvaluationController {
	return &EvaluationController{EvaluationService: evaluationService}
}

func (ec *EvaluationController) SubmitEvaluation(c *gin.Context) {
	var req service.SubmitEvaluationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: missing required fields"})
		return
	}
	evaluation, err := ec.EvaluationService.SubmitEvaluation(req, c.GetString("username"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, evaluation)
}

func (ec *EvaluationController) GetEvaluations(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("project_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}
	evaluations, err := ec.EvaluationService.GetEvaluations(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, evaluations)
}

func (ec *EvaluationController) QuickEvaluation(c *gin.Context) {
	var factors scoring.RiskFactors
	if err := c.ShouldBindJSON(&factors); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	c.JSON(http.StatusOK, ec.EvaluationService.QuickEvaluation(factors))
}

func (ec *EvaluationController) GetQuestions(c *gin.Context) {
	phase := model.Phase(c.Query("phase"))
	pillar := model.Pillar(c.Query("pillar"))
	questions, err := ec.EvaluationService.GetQuestions(phase, pillar)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}
