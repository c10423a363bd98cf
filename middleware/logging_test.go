package middleware_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TylerBromley/bindkit/core/handler"
	"github.com/TylerBromley/bindkit/core/logger"
	"github.com/TylerBromley/bindkit/core/response"
	"github.com/TylerBromley/bindkit/core/router"
	"github.com/TylerBromley/bindkit/middleware"
)

func TestLogging(t *testing.T) {
	t.Parallel()

	t.Run("logs one record per request", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithJSON())

		r := router.New(router.WithMiddleware(
			middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{Logger: log}),
		))
		r.Get("/items/{item_id}", func(ctx *router.Context) handler.Response {
			return response.JSON(map[string]string{"id": ctx.Param("item_id")})
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/items/42", nil))

		out := buf.String()
		assert.Contains(t, out, "request completed")
		assert.Contains(t, out, `"method":"GET"`)
		assert.Contains(t, out, `"path":"/items/42"`)
		assert.Contains(t, out, `"status_code":200`)
	})

	t.Run("skip suppresses the record", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithJSON())

		r := router.New(router.WithMiddleware(
			middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
				Logger: log,
				Skip:   func(ctx handler.Context) bool { return true },
			}),
		))
		r.Get("/", func(ctx *router.Context) handler.Response {
			return response.JSON(nil)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Empty(t, buf.String())
	})
}
