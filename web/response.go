package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FieldError describes a single failed validation rule on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// OK writes the success envelope with a payload.
func OK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// Fail writes the failure envelope with a single error message.
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// FailFields writes the failure envelope with field-level validation errors.
func FailFields(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": errs})
}
