package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/formhive/formhive-backend/internal/middleware"
	"github.com/formhive/formhive-backend/internal/model"
	"github.com/formhive/formhive-backend/internal/repository"
	"github.com/formhive/formhive-backend/internal/response"
	"github.com/formhive/formhive-backend/internal/service"
	"github.com/formhive/formhive-backend/internal/validator"
)

// FormHandler handles form creation and reads.
type FormHandler struct {
	formService *service.FormService
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(formService *service.FormService) *FormHandler {
	return &FormHandler{formService: formService}
}

// CreateForm godoc
// POST /api/v1/forms
// Creates a form with its questions in one atomic write.
func (h *FormHandler) CreateForm(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.CreateFormRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	form, err := h.formService.Create(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		if ve, ok := model.AsValidationError(err); ok {
			response.FailValidation(c, ve)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"form": form})
}

// GetForm godoc
// GET /api/v1/forms/:form_id
// Returns one form with its questions in stored order. Private forms
// are visible only to their creator.
func (h *FormHandler) GetForm(c *gin.Context) {
	formID, err := uuid.Parse(c.Param("form_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var viewer *uuid.UUID
	if claims := middleware.GetClaims(c); claims != nil {
		viewer = &claims.UserID
	}

	form, err := h.formService.Get(c.Request.Context(), formID, viewer)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrFormAccessDenied):
			response.Fail(c, http.StatusForbidden, response.ErrForbidden)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"form": form})
}

// ListPublicForms godoc
// GET /api/v1/forms
// Lists the public form directory with creator display names,
// paginated.
func (h *FormHandler) ListPublicForms(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	forms, pagination, err := h.formService.ListPublic(c.Request.Context(), page, perPage)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"forms": forms}, pagination)
}

// ListMyForms godoc
// GET /api/v1/my/forms
// Lists the authenticated user's own forms.
func (h *FormHandler) ListMyForms(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	forms, err := h.formService.ListMine(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"forms": forms})
}
