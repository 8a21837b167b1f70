package handler

import (
	"errors"
	"net/http"

	"github.com/orderdesk/backend/internal/domain/shared"
	"github.com/orderdesk/backend/internal/interfaces/http/dto"
	"github.com/orderdesk/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// Success sends the resource itself with 200
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// SuccessList sends a paginated list envelope with 200
func (h *BaseHandler) SuccessList(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewListResponse(data, total, page, pageSize))
}

// Created sends the resource itself with 201
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 with empty body
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// NotFound sends a 404 single-message error
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.NewErrorResponse(message))
}

// UnprocessableEntity sends a 422 with one message per failed check
func (h *BaseHandler) UnprocessableEntity(c *gin.Context, messages ...string) {
	c.JSON(http.StatusUnprocessableEntity, dto.NewValidationErrorResponse(messages...))
}

// BadRequest sends a 400 for requests that could not be parsed at all
func (h *BaseHandler) BadRequest(c *gin.Context, messages ...string) {
	c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(messages...))
}

// InternalError sends a 500 single-message error
func (h *BaseHandler) InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("An unexpected error occurred"))
}

// BindJSON binds and validates a JSON body. A body that fails binding
// checks renders as 422; a body that cannot be parsed renders as 400.
// Returns false if a response has already been written.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			h.UnprocessableEntity(c, middleware.FormatValidationErrors(err)...)
		} else {
			h.BadRequest(c, err.Error())
		}
		return false
	}
	return true
}

// BindQuery binds and validates query parameters, rendering 422 on failure
func (h *BaseHandler) BindQuery(c *gin.Context, obj any) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		h.UnprocessableEntity(c, middleware.FormatValidationErrors(err)...)
		return false
	}
	return true
}

// ParseID parses the :id path parameter. A malformed id renders the
// same 404 an unknown id would.
func (h *BaseHandler) ParseID(c *gin.Context, resource string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, resource+" not found")
		return uuid.Nil, false
	}
	return id, true
}

// HandleError converts domain errors to HTTP responses. Semantic
// failures carry the errors-array body, everything else a single message.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		if dto.IsSemanticFailure(domainErr.Code) {
			c.JSON(status, dto.NewValidationErrorResponse(domainErr.Message))
			return
		}
		c.JSON(status, dto.NewErrorResponse(domainErr.Message))
		return
	}

	h.InternalError(c)
}
