package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-suggestion/pkg/log"
	"task-suggestion/pkg/response"
)

const (
	TraceIDHeader     = "X-Trace-ID"
	ProcessTimeHeader = "X-Process-Time"
	AdminTokenHeader  = "X-Admin-Token"
)

// TraceID reuses the caller's X-Trace-ID or generates one, and stores it on
// the request context for the logger.
func (m Middleware) TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}
		c.Request = c.Request.WithContext(log.WithTraceID(c.Request.Context(), traceID))
		c.Header(TraceIDHeader, traceID)
		c.Next()
	}
}

// ProcessTime reports the handler duration in seconds. Headers must be set
// before the body is written, so the value is written on the first write.
func (m Middleware) ProcessTime() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer = &timedWriter{ResponseWriter: c.Writer, start: time.Now()}
		c.Next()
	}
}

type timedWriter struct {
	gin.ResponseWriter
	start   time.Time
	stamped bool
}

func (w *timedWriter) stamp() {
	if w.stamped {
		return
	}
	w.stamped = true
	elapsed := time.Since(w.start).Seconds()
	w.Header().Set(ProcessTimeHeader, strconv.FormatFloat(elapsed, 'f', 6, 64))
}

func (w *timedWriter) WriteHeader(code int) {
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *timedWriter) WriteHeaderNow() {
	w.stamp()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *timedWriter) Write(b []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(b)
}

func (w *timedWriter) WriteString(s string) (int, error) {
	w.stamp()
	return w.ResponseWriter.WriteString(s)
}

// CORS allows every origin, method and header.
func (m Middleware) CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "*")
		h.Set("Access-Control-Expose-Headers", ProcessTimeHeader+", "+TraceIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Timeout puts the configured deadline on the request context.
func (m Middleware) Timeout() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), m.timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// AdminAuth requires X-Admin-Token to match the configured token.
// With no token configured every request passes.
func (m Middleware) AdminAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.adminToken == "" {
			c.Next()
			return
		}
		token := c.GetHeader(AdminTokenHeader)
		if subtle.ConstantTimeCompare([]byte(token), []byte(m.adminToken)) != 1 {
			m.l.Warnf(c.Request.Context(), "middleware.AdminAuth: rejected request to %s", c.FullPath())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
