package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/formhive/formhive-backend/internal/model"
	"github.com/formhive/formhive-backend/internal/response"
)

// TemplateHandler serves the built-in form template catalog.
type TemplateHandler struct{}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// ListTemplates godoc
// GET /api/v1/templates
// Lists the built-in form templates.
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"templates": model.Templates})
}

// GetTemplate godoc
// GET /api/v1/templates/:slug
// Returns one template by slug.
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	tpl := model.TemplateBySlug(c.Param("slug"))
	if tpl == nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"template": tpl})
}
