package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shelterhq/pawhaven/internal/shared/constants"
	"github.com/shelterhq/pawhaven/internal/shared/errors"
)

// APIResponse is the standard single-object response envelope.
type APIResponse struct {
	Data    interface{} `json:"data"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
}

// ListAPIResponse is the paginated list response envelope.
type ListAPIResponse struct {
	Data       interface{} `json:"data"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"totalPages"`
}

// SuccessResponse sends a successful response with HTTP 200.
func SuccessResponse(c *gin.Context, data interface{}, message ...string) {
	msg := "success"
	if len(message) > 0 {
		msg = message[0]
	}

	c.JSON(http.StatusOK, APIResponse{
		Data:    data,
		Code:    http.StatusOK,
		Message: msg,
	})
}

// CreatedResponse sends a created response with HTTP 201.
func CreatedResponse(c *gin.Context, data interface{}, message ...string) {
	msg := "created"
	if len(message) > 0 {
		msg = message[0]
	}

	c.JSON(http.StatusCreated, APIResponse{
		Data:    data,
		Code:    http.StatusCreated,
		Message: msg,
	})
}

// MessageResponse sends a successful response carrying only a message.
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Data:    nil,
		Code:    http.StatusOK,
		Message: message,
	})
}

// ListResponse sends a paginated list response with HTTP 200.
func ListResponse(c *gin.Context, items interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, ListAPIResponse{
		Data:       items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: TotalPages(total, limit),
	})
}

// ErrorResponse sends an error response with custom status code and message.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, APIResponse{
		Data:    nil,
		Code:    statusCode,
		Message: message,
	})
}

// ErrorResponseWithError maps an error to the envelope based on its type.
// Non-AppError values are not exposed to the client.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		msg := appErr.Message
		if appErr.Details != "" {
			msg = msg + ": " + appErr.Details
		}
		ErrorResponse(c, appErr.Code, msg)
		return
	}

	ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
}

// NoContentResponse sends a no content response.
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
