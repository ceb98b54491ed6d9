package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"termdex/internal/models"
	"termdex/internal/responses"
	"termdex/internal/services"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

type projectActionRequest struct {
	Action      string  `json:"action"`
	ID          *int64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// HandleAction handles POST /api/projects, dispatching on the body's
// action verb.
func (h *ProjectHandler) HandleAction(c *gin.Context) {
	var req projectActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := c.Request.Context()

	switch req.Action {
	case "create-project":
		project, err := h.projectService.Create(ctx, services.CreateProjectRequest{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			responses.FromError(c, err)
			return
		}
		c.JSON(http.StatusCreated, project)

	case "update-project":
		project, err := h.projectService.Update(ctx, services.UpdateProjectRequest{
			ID:          req.ID,
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			responses.FromError(c, err)
			return
		}
		c.JSON(http.StatusOK, project)

	case "delete-project":
		if err := h.projectService.Delete(ctx, req.ID); err != nil {
			responses.FromError(c, err)
			return
		}
		responses.Deleted(c)

	default:
		responses.Message(c, http.StatusBadRequest, "unsupported action")
	}
}
