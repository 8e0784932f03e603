package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Success   bool         `json:"success"`
	Data      interface{}  `json:"data"`
	Error     *ErrorDetail `json:"error,omitempty"`
	RequestID string       `json:"requestId"`
	Timestamp string       `json:"timestamp"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, APIResponse{
		Success:   true,
		Data:      data,
		RequestID: c.GetString("X-Request-ID"),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func Error(c *gin.Context, status int, errCode string, message string, details interface{}) {
	c.JSON(status, APIResponse{
		Success: false,
		Error: &ErrorDetail{
			Code:    errCode,
			Message: message,
			Details: details,
		},
		RequestID: c.GetString("X-Request-ID"),
		Timestamp: time.Now().Format(time.RFC3339),
	})
}
