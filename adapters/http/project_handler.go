package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectUC "github.com/khoahotran/portfolio-api/internal/application/usecase/project"
)

type ProjectHandler struct {
	createProjectUseCase *projectUC.CreateProjectUseCase
	listProjectsUseCase  *projectUC.ListProjectsUseCase
	getProjectUseCase    *projectUC.GetProjectUseCase
	updateProjectUseCase *projectUC.UpdateProjectUseCase
	deleteProjectUseCase *projectUC.DeleteProjectUseCase
}

func NewProjectHandler(
	createUC *projectUC.CreateProjectUseCase,
	listUC *projectUC.ListProjectsUseCase,
	getUC *projectUC.GetProjectUseCase,
	updateUC *projectUC.UpdateProjectUseCase,
	deleteUC *projectUC.DeleteProjectUseCase,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUseCase: createUC,
		listProjectsUseCase:  listUC,
		getProjectUseCase:    getUC,
		updateProjectUseCase: updateUC,
		deleteProjectUseCase: deleteUC,
	}
}

func (h *ProjectHandler) ListPublicProjects(c *gin.Context) {
	output, err := h.listProjectsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]PublicProjectDTO, len(output.Projects))
	for i, p := range output.Projects {
		dtos[i] = ToPublicProjectDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	output, err := h.listProjectsUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]AdminProjectDTO, len(output.Projects))
	for i, p := range output.Projects {
		dtos[i] = ToAdminProjectDTO(p)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req ProjectRequest
	if err := bindRequest(c, &req); err != nil {
		c.Error(err)
		return
	}
	if image, ok := formValue(c, "image"); ok {
		req.Image = image
	}
	file, err := formFile(c, "image")
	if err != nil {
		c.Error(err)
		return
	}
	input := projectUC.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Link:        req.Link,
		Order:       req.Order,
	}
	if file != nil {
		defer file.Close()
		input.ImageFile = file
	}

	output, err := h.createProjectUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToAdminProjectDTO(output.Project))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := parseID(c, "project")
	if err != nil {
		c.Error(err)
		return
	}
	output, err := h.getProjectUseCase.Execute(c.Request.Context(), projectUC.GetProjectInput{ProjectID: projectID})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToAdminProjectDTO(output.Project))
}

// UpdateProject serves both PUT and PATCH.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := parseID(c, "project")
	if err != nil {
		c.Error(err)
		return
	}

	var req ProjectRequest
	if isPartial(c) {
		current, err := h.getProjectUseCase.Execute(c.Request.Context(), projectUC.GetProjectInput{ProjectID: projectID})
		if err != nil {
			c.Error(err)
			return
		}
		req = newProjectRequest(current.Project)
	}
	if err := bindRequest(c, &req); err != nil {
		c.Error(err)
		return
	}
	if image, ok := formValue(c, "image"); ok {
		req.Image = image
	}
	file, err := formFile(c, "image")
	if err != nil {
		c.Error(err)
		return
	}

	input := projectUC.UpdateProjectInput{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Link:        req.Link,
		Order:       req.Order,
	}
	if file != nil {
		defer file.Close()
		input.ImageFile = file
	}

	output, err := h.updateProjectUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToAdminProjectDTO(output.Project))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := parseID(c, "project")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.deleteProjectUseCase.Execute(c.Request.Context(), projectUC.DeleteProjectInput{ProjectID: projectID}); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
