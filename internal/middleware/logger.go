package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"bookease/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequestLogger writes one key=value line per request and recovers from
// panics, answering with the standard envelope.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequest(c, start, "panic", err.Error())
				log.Printf("panic_stack request_id=%s stack=%s", c.GetString("request_id"), debug.Stack())

				c.AbortWithStatusJSON(http.StatusInternalServerError, response.Envelope{
					Success:    false,
					StatusCode: http.StatusInternalServerError,
					Message:    "Internal Server Error",
					Data:       []any{},
				})
				return
			}

			level := "request"
			if c.Writer.Status() >= http.StatusInternalServerError {
				level = "request_error"
			}
			logRequest(c, start, level, "")
		}()

		c.Next()
	}
}

func logRequest(c *gin.Context, start time.Time, level string, errMsg string) {
	log.Printf(
		"%s status=%d method=%s path=%s client_ip=%s user_id=%d request_id=%s latency=%s error=%q",
		level,
		c.Writer.Status(),
		c.Request.Method,
		c.Request.URL.Path,
		c.ClientIP(),
		c.GetInt64("user_id"),
		c.GetString("request_id"),
		time.Since(start),
		errMsg,
	)
}
