package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"termdex/internal/models"
	"termdex/internal/repositories"
	"termdex/internal/responses"
	"termdex/internal/services"
)

type TermHandler struct {
	termService *services.TermService
}

func NewTermHandler(termService *services.TermService) *TermHandler {
	return &TermHandler{termService: termService}
}

// ListTerms handles GET /api/terms?q=&projectId=&tag=
func (h *TermHandler) ListTerms(c *gin.Context) {
	filter := repositories.TermFilter{
		Query: strings.TrimSpace(c.Query("q")),
		Tag:   strings.TrimSpace(c.Query("tag")),
	}

	if raw := c.Query("projectId"); raw != "" {
		projectID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			responses.Message(c, http.StatusBadRequest, "invalid projectId")
			return
		}
		filter.ProjectID = &projectID
	}

	terms, err := h.termService.Search(c.Request.Context(), filter)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	if terms == nil {
		terms = []models.Term{}
	}
	c.JSON(http.StatusOK, terms)
}

type termActionRequest struct {
	Action      string  `json:"action"`
	ID          *int64  `json:"id"`
	Term        string  `json:"term"`
	Description string  `json:"description"`
	ProjectID   *int64  `json:"projectId"`
	ExtraTags   *string `json:"extraTags"`
}

// HandleAction handles POST /api/terms, dispatching on the body's action
// verb.
func (h *TermHandler) HandleAction(c *gin.Context) {
	var req termActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.Message(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := c.Request.Context()

	switch req.Action {
	case "create-term":
		term, err := h.termService.Create(ctx, services.CreateTermRequest{
			Term:        req.Term,
			Description: req.Description,
			ProjectID:   req.ProjectID,
			ExtraTags:   req.ExtraTags,
		})
		if err != nil {
			responses.FromError(c, err)
			return
		}
		c.JSON(http.StatusCreated, term)

	case "update-term":
		term, err := h.termService.Update(ctx, services.UpdateTermRequest{
			ID:          req.ID,
			Term:        req.Term,
			Description: req.Description,
			ProjectID:   req.ProjectID,
			ExtraTags:   req.ExtraTags,
		})
		if err != nil {
			responses.FromError(c, err)
			return
		}
		c.JSON(http.StatusOK, term)

	case "delete-term":
		if err := h.termService.Delete(ctx, req.ID); err != nil {
			responses.FromError(c, err)
			return
		}
		responses.Deleted(c)

	default:
		responses.Message(c, http.StatusBadRequest, "unsupported action")
	}
}
