package handler

import (
	"errors"
	"net/http"

	"github.com/acme/dashboard/internal/domain/shared"
	"github.com/acme/dashboard/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, meta dto.Meta) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, meta))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleActionState translates a mutation outcome into an HTTP response.
// Success means the client should navigate to the listing, so it becomes a
// 303 with the target in Location and in the body. Field errors re-render
// the form as 422; a bare failure message is a 500.
func (h *BaseHandler) HandleActionState(c *gin.Context, state shared.ActionState) {
	if state.Succeeded() {
		c.Header("Location", state.RedirectTo)
		c.JSON(http.StatusSeeOther, dto.NewSuccessResponse(gin.H{"redirect_to": state.RedirectTo}))
		return
	}
	if state.Errors.HasErrors() {
		c.JSON(http.StatusUnprocessableEntity,
			dto.Response{Success: false, Data: dto.NewActionStateResponse(state),
				Error: &dto.ErrorInfo{Code: dto.ErrCodeValidation, Message: state.Message, RequestID: getRequestID(c)}})
		return
	}
	c.JSON(http.StatusInternalServerError,
		dto.Response{Success: false, Data: dto.NewActionStateResponse(state),
			Error: &dto.ErrorInfo{Code: dto.ErrCodeInternal, Message: state.Message, RequestID: getRequestID(c)}})
}

// HandleError converts domain errors to HTTP responses
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		code := dto.NormalizeErrorCode(domainErr.Code)
		c.JSON(dto.GetHTTPStatus(code),
			dto.NewErrorResponseWithRequestID(code, domainErr.Message, getRequestID(c)))
		return
	}

	h.InternalError(c, "An unexpected error occurred")
}
