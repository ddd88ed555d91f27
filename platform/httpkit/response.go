// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"

	"accounts_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

const (
	statusSuccess    = "success"
	statusBadRequest = "Bad request"
	statusError      = "error"

	msgInternalError = "An unexpected error occurred"
)

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the standard error envelope. StatusCode mirrors the HTTP
// status of the response.
type ErrorResponse struct {
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	Errors     interface{} `json:"errors,omitempty"`
	StatusCode int         `json:"statusCode"`
}

// Success sends a success envelope with the given status code.
func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, SuccessResponse{
		Status:  statusSuccess,
		Message: message,
		Data:    data,
	})
}

// OK sends a 200 success envelope.
func OK(c *gin.Context, message string, data interface{}) {
	Success(c, http.StatusOK, message, data)
}

// Error sends an error envelope with the given status code and message.
func Error(c *gin.Context, status int, message string, details interface{}) {
	c.JSON(status, ErrorResponse{
		Status:     statusLabel(status),
		Message:    message,
		Errors:     details,
		StatusCode: status,
	})
}

// AbortError sends an error envelope and aborts the request chain.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Status:     statusLabel(status),
		Message:    message,
		StatusCode: status,
	})
}

// HandleError maps domain errors to HTTP responses. Typed *apperr.Error values
// use their Kind for the status code; anything else is treated as an internal
// failure and answered with a generic message so internal error strings never
// reach the client. Returns true if an error was handled.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	if domainErr, ok := err.(*apperr.Error); ok && domainErr.Kind != apperr.KindInternal {
		Error(c, domainErr.HTTPStatus(), domainErr.Message, domainErr.Details)
		return true
	}

	Error(c, http.StatusInternalServerError, msgInternalError, nil)
	return true
}

func statusLabel(status int) string {
	if status == http.StatusBadRequest {
		return statusBadRequest
	}
	return statusError
}
