// Package utils provides shared HTTP response helpers for the interface layer.
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayops/internal/shared/errors"
)

// APIResponse is the standard envelope returned by every HTTP endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError carries error details in the response envelope.
type APIError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse writes a success envelope with the given status and payload.
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// CreatedResponse writes a 201 envelope.
func CreatedResponse(c *gin.Context, message string, data interface{}) {
	SuccessResponse(c, http.StatusCreated, message, data)
}

// OKResponse writes a 200 envelope.
func OKResponse(c *gin.Context, message string, data interface{}) {
	SuccessResponse(c, http.StatusOK, message, data)
}

// AcceptedResponse writes a 202 envelope for asynchronous operations.
func AcceptedResponse(c *gin.Context, message string, data interface{}) {
	SuccessResponse(c, http.StatusAccepted, message, data)
}

// NoContentResponse writes a 204 with no body.
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ErrorResponse maps an error to the envelope. AppError values keep their
// status code and type; anything else becomes a 500 internal error.
func ErrorResponse(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, APIResponse{
			Success: false,
			Error: &APIError{
				Type:    string(appErr.Type),
				Message: appErr.Message,
				Details: appErr.Details,
			},
		})
		return
	}

	c.JSON(http.StatusInternalServerError, APIResponse{
		Success: false,
		Error: &APIError{
			Type:    string(errors.ErrorTypeInternal),
			Message: "internal server error",
		},
	})
}

// ValidationErrorResponse writes a 400 validation envelope for binding failures.
func ValidationErrorResponse(c *gin.Context, details string) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Error: &APIError{
			Type:    string(errors.ErrorTypeValidation),
			Message: "invalid request",
			Details: details,
		},
	})
}
