package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, contextutil.GetRequestID(c.Request.Context()))
	})

	t.Run("keeps a well-formed client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "batch-2024-05.run:1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "batch-2024-05.run:1", w.Body.String())
		assert.Equal(t, "batch-2024-05.run:1", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("replaces missing or unsafe ids", func(t *testing.T) {
		for _, in := range []string{"", "has space", strings.Repeat("a", 65)} {
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if in != "" {
				req.Header.Set(middleware.RequestIDHeader, in)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			_, err := uuid.Parse(w.Body.String())
			assert.NoError(t, err, "input %q", in)
		}
	})
}
