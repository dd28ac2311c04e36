package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"asg-backend-V2.0/internal/model"
	"asg-backend-V2.0/internal/service"
)

type ProjectController struct {
	ProjectService service.ProjectService
}

func NewProjectController(projectService service.ProjectService) *ProjectController {
	return &ProjectController{ProjectService: projectService}
}

func projectID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return 0, false
	}
	return uint(id), true
}

func (pc *ProjectController) CreateProject(c *gin.Context) {
	var project model.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := pc.ProjectService.CreateProject(&project, c.GetString("username")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (pc *ProjectController) GetProjects(c *gin.Context) {
	projects, err := pc.ProjectService.GetProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (pc *ProjectController) GetProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	project, err := pc.ProjectService.GetProject(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, project)
}

func (pc *ProjectController) GetProjectScore(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	result, err := pc.ProjectService.GetProjectScore(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (pc *ProjectController) GetRisks(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	risks, err := pc.ProjectService.GetRisks(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, risks)
}

func (pc *ProjectController) GetHistory(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}
	history, err := pc.ProjectService.GetHistory(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, history)
}
