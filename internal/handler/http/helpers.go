package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stocai/blog-admin/internal/domain/entity"
	"github.com/stocai/blog-admin/internal/handler/http/dto"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message, Status: statusCode})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// RespondAPIError maps a normalized upstream error onto the admin
// response. A missing status means no upstream response was received.
func RespondAPIError(c *gin.Context, err error) {
	apiErr := entity.AsAPIError(err)
	status := apiErr.Status
	if status == 0 {
		status = http.StatusBadGateway
	}
	ErrorHandler(c, status, apiErr.Message)
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// ParseIDParam reads the numeric :id path parameter.
func ParseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "Invalid ID format")
		return 0, false
	}
	return id, true
}
