package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs each request in key=value form and recovers panics
// into a JSON 500.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequest(c, start, "panic", err.Error())
				log.Printf("panic_stack request_id=%s stack=%s", requestID(c), debug.Stack())

				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				c.Abort()
				return
			}

			status := "ok"
			if c.Writer.Status() >= http.StatusBadRequest {
				status = "error"
			}
			logRequest(c, start, status, c.Errors.String())
		}()

		c.Next()
	}
}

func logRequest(c *gin.Context, start time.Time, outcome string, detail string) {
	log.Printf(
		"request outcome=%s status=%d method=%s path=%s client_ip=%s user_id=%d request_id=%s latency=%s detail=%q",
		outcome,
		c.Writer.Status(),
		c.Request.Method,
		c.Request.URL.Path,
		c.ClientIP(),
		c.GetInt64("user_id"),
		requestID(c),
		time.Since(start),
		detail,
	)
}

func requestID(c *gin.Context) string {
	id := c.GetHeader("X-Request-ID")
	if id == "" {
		id = c.GetHeader("X-Request-Id")
	}
	return id
}
