package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON envelope
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: c.GetString("RequestID"),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: c.GetString("RequestID"),
	})
}
