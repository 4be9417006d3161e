package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reelfolio/core/internal/infrastructure/logger"
	"github.com/reelfolio/core/internal/ports"
)

// ProjectHandler handles project-related requests
type ProjectHandler struct {
	projectService ports.ProjectService
	logger         *logger.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService ports.ProjectService, logger *logger.Logger) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger,
	}
}

// ListProjects godoc
// @Summary List projects
// @Description Return every project, most recent first
// @Tags projects
// @Produce json
// @Success 200 {array} entities.Project
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c echo.Context) error {
	projects, err := h.projectService.ListProjects(c.Request().Context())
	if err != nil {
		h.logger.Errorw("List projects failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, projects)
}

// CreateProject godoc
// @Summary Create a new project
// @Description Store a project and assign it an id
// @Tags projects
// @Accept json
// @Produce json
// @Param request body ports.ProjectRequest true "Project data"
// @Success 201 {object} entities.Project
// @Failure 400 {object} ValidationErrorResponse
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c echo.Context) error {
	var req ports.ProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	project, err := h.projectService.CreateProject(c.Request().Context(), req)
	if err != nil {
		h.logger.Errorw("Create project failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, project)
}

// UpdateProject godoc
// @Summary Replace a project
// @Description Replace the project stored under id; the path id always wins
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body ports.ProjectRequest true "Project data"
// @Success 200 {object} entities.Project
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} MessageResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c echo.Context) error {
	id := c.Param("id")

	// An unknown id is a 404 whatever the body holds
	if _, err := h.projectService.GetProject(c.Request().Context(), id); err != nil {
		h.logger.Warnw("Update project failed", "error", err, "project_id", id)
		return serviceError(err)
	}

	var req ports.ProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	project, err := h.projectService.UpdateProject(c.Request().Context(), id, req)
	if err != nil {
		h.logger.Warnw("Update project failed", "error", err, "project_id", id)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags projects
// @Param id path string true "Project ID"
// @Success 204
// @Failure 404 {object} MessageResponse
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c echo.Context) error {
	id := c.Param("id")

	if err := h.projectService.DeleteProject(c.Request().Context(), id); err != nil {
		h.logger.Warnw("Delete project failed", "error", err, "project_id", id)
		return serviceError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
