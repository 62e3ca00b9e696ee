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

// ResponseHandler handles response submission and reads.
type ResponseHandler struct {
	responseService *service.ResponseService
}

// NewResponseHandler creates a new ResponseHandler.
func NewResponseHandler(responseService *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseService: responseService}
}

// SubmitResponse godoc
// POST /api/v1/forms/:form_id/responses
// Submits one response to a form. Authentication is optional: an
// anonymous submission on a form that allows it needs no account.
func (h *ResponseHandler) SubmitResponse(c *gin.Context) {
	formID, err := uuid.Parse(c.Param("form_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.SubmitResponseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	var submitter *uuid.UUID
	if claims := middleware.GetClaims(c); claims != nil {
		submitter = &claims.UserID
	}

	resp, err := h.responseService.Submit(c.Request.Context(), formID, &req, submitter)
	if err != nil {
		if ve, ok := model.AsValidationError(err); ok {
			response.FailValidation(c, ve)
			return
		}
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrAuthRequired):
			response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"response": resp})
}

// ListFormResponses godoc
// GET /api/v1/forms/:form_id/responses
// Lists the enriched responses to one form, paginated. Creator only.
func (h *ResponseHandler) ListFormResponses(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	formID, err := uuid.Parse(c.Param("form_id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	responses, pagination, err := h.responseService.ListForForm(c.Request.Context(), formID, claims.UserID, page, perPage)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrNotFormOwner):
			response.Fail(c, http.StatusForbidden, response.ErrNotFormOwner)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.SuccessWithPagination(c, http.StatusOK, gin.H{"responses": responses}, pagination)
}

// ListMyResponses godoc
// GET /api/v1/my/responses
// Lists the authenticated user's own submissions across forms.
func (h *ResponseHandler) ListMyResponses(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	responses, err := h.responseService.ListForUser(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"responses": responses})
}
