package response

import (
	"github.com/gin-gonic/gin"
)

const (
	StatusHandled = "Successfully processed request."
	StatusFailed  = "Failed to process request."
)

// Envelope is the upstream wire wrapper. Data is either a single value or a list.
type Envelope struct {
	Data       any    `json:"data"`
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode,omitempty"`
	Error      string `json:"error,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Handled writes a successful envelope. data may be nil for "handled, nothing to return".
func Handled(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{
		Data:       data,
		Status:     StatusHandled,
		StatusCode: status,
	})
}

func Failed(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{
		Data:       nil,
		Status:     StatusFailed,
		StatusCode: status,
		Error:      message,
	})
}

// Error writes the facade's error body.
func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, gin.H{
		"error": ErrorBody{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
	})
}
