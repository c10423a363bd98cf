package router

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/TylerBromley/bindkit/core/handler"
	"github.com/TylerBromley/bindkit/core/logger"
)

// route is one registered pattern with its handler.
type route[C handler.Context] struct {
	method  string
	pattern pattern
	handler handler.HandlerFunc[C]
}

// mux is the private implementation of the Router interface. Routes match in
// registration order, so more specific patterns should be registered before
// overlapping captures.
type mux[C handler.Context] struct {
	routes       []route[C]
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	log          *slog.Logger
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		errorHandler: defaultErrorHandler[C],
		log:          logger.Discard(),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			// Only the default *Context works without a factory.
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(newContext(w, r, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return m
}

// ServeHTTP implements http.Handler.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ww := newResponseWriter(w)

	path := r.URL.Path
	if path == "" {
		path = "/"
	}

	var (
		fn      handler.HandlerFunc[C]
		params  map[string]string
		allowed []string
	)
	for _, rt := range m.routes {
		p, ok := rt.pattern.match(path)
		if !ok {
			continue
		}
		if rt.method != r.Method {
			allowed = append(allowed, rt.method)
			continue
		}
		fn, params = rt.handler, p
		break
	}

	ctx := m.newContext(ww, r, params)

	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{value: p, stack: debug.Stack()}
			if ww.Written() {
				// Too late for an error response.
				m.log.Error("panic after response written",
					logger.Error(panicErr),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.StatusCode(ww.Status()),
				)
			} else {
				m.errorHandler(ctx, panicErr)
			}
		}
	}()

	if fn == nil {
		if len(allowed) > 0 {
			// Allow header per RFC 7231 on 405 responses
			ww.Header().Set("Allow", strings.Join(dedupeStrings(allowed), ", "))
			m.errorHandler(ctx, ErrMethodNotAllowed)
		} else {
			m.errorHandler(ctx, ErrRouteNotFound)
		}
		return
	}

	if len(m.middlewares) > 0 {
		fn = chain(m.middlewares, fn)
	}

	resp := fn(ctx)
	if resp == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}
	if err := resp(ww, r); err != nil {
		if ww.Written() {
			m.log.Error("response failed after write",
				logger.Error(err),
				logger.Method(r.Method),
				logger.Path(r.URL.Path),
			)
			return
		}
		m.errorHandler(ctx, err)
	}
}

func (m *mux[C]) handle(method, raw string, h handler.HandlerFunc[C]) {
	if h == nil {
		panic("router: nil handler for " + method + " " + raw)
	}
	m.routes = append(m.routes, route[C]{
		method:  method,
		pattern: compilePattern(raw),
		handler: h,
	})
}

// Get registers a handler for GET requests.
func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodGet, pattern, h)
}

// Post registers a handler for POST requests.
func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPost, pattern, h)
}

// Put registers a handler for PUT requests.
func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPut, pattern, h)
}

// Delete registers a handler for DELETE requests.
func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodDelete, pattern, h)
}

// Patch registers a handler for PATCH requests.
func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPatch, pattern, h)
}

// Head registers a handler for HEAD requests.
func (m *mux[C]) Head(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodHead, pattern, h)
}

// Method registers a handler for the given HTTP methods.
func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	for _, method := range methods {
		m.handle(strings.ToUpper(method), pattern, h)
	}
}

// Use appends middleware applied to every matched handler.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	m.middlewares = append(m.middlewares, middlewares...)
}

// Routes returns every registered route in registration order.
func (m *mux[C]) Routes() []Route {
	out := make([]Route, len(m.routes))
	for i, rt := range m.routes {
		out[i] = Route{Method: rt.method, Pattern: rt.pattern.raw}
	}
	return out
}

// chain composes middlewares around a handler, first registered outermost.
func chain[C handler.Context](middlewares []handler.Middleware[C], h handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
