package httpx

import (
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clayhaus/backoffice/internal/authz"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get("rid")
		log.Printf("[http] rid=%v %s %s status=%d dur=%s",
			rid, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// AdminToken copies the caller's bearer token into the request context
// so the services' admin gate can check it. It deliberately does not
// reject here: the gate itself decides, so a missing token fails inside
// the operation with the uniform error shape.
func AdminToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		tok := c.GetHeader("Authorization")
		tok = strings.TrimPrefix(tok, "Bearer ")
		if tok != "" {
			c.Request = c.Request.WithContext(authz.WithToken(c.Request.Context(), tok))
		}
		c.Next()
	}
}
