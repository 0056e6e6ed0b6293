package response

import "github.com/gin-gonic/gin"

// Envelope is the uniform response wrapper used on every endpoint.
type Envelope struct {
	Success    bool   `json:"success"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

func Success(c *gin.Context, statusCode int, message string, data any) {
	if data == nil {
		data = []any{}
	}
	c.JSON(statusCode, Envelope{
		Success:    true,
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Envelope{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Data:       []any{},
	})
}

// ErrorWithDetails carries field-level validation errors in data.
func ErrorWithDetails(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, Envelope{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Data:       details,
	})
}

// AbortError writes the envelope and stops the handler chain. For middleware.
func AbortError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, Envelope{
		Success:    false,
		StatusCode: statusCode,
		Message:    message,
		Data:       []any{},
	})
}
