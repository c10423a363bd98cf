package catalog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/TylerBromley/bindkit/core/config"
	"github.com/TylerBromley/bindkit/core/logger"
	"github.com/TylerBromley/bindkit/core/response"
	"github.com/TylerBromley/bindkit/core/router"
	"github.com/TylerBromley/bindkit/core/server"
	"github.com/TylerBromley/bindkit/middleware"
)

// App wires the catalog's store, router, and server together.
type App struct {
	config Config
	store  Store
	router router.Router[*Context]
	server *server.Server
	log    *slog.Logger
}

// AppOption overrides a default App dependency.
type AppOption func(*App) error

// NewApp loads configuration, applies options, and registers routes.
func NewApp(opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		log:    logger.New(logger.WithLevel(logger.ParseLevel(cfg.LogLevel))),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.store == nil {
		app.store = NewMemStore()
	}

	if app.router == nil {
		app.router = router.New(
			router.WithContextFactory(app.newContext),
			router.WithErrorHandler(response.JSONErrorHandler[*Context]),
			router.WithLogger[*Context](app.log),
			router.WithMiddleware(
				middleware.RequestID[*Context](),
				middleware.LoggingWithConfig[*Context](middleware.LoggingConfig{Logger: app.log}),
			),
		)
	}
	app.registerRoutes(app.router)

	if app.server == nil {
		s, err := server.NewFromConfig(app.config.Server, server.WithLogger(app.log))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	return app, nil
}

// WithLogger overrides the default logger.
func WithLogger(log *slog.Logger) AppOption {
	return func(app *App) error {
		if log == nil {
			return errors.New("logger cannot be nil")
		}
		app.log = log
		return nil
	}
}

// WithStore overrides the default in-memory store.
func WithStore(store Store) AppOption {
	return func(app *App) error {
		if store == nil {
			return errors.New("store cannot be nil")
		}
		app.store = store
		return nil
	}
}

// WithServer overrides the default server.
func WithServer(srv *server.Server) AppOption {
	return func(app *App) error {
		if srv == nil {
			return errors.New("server cannot be nil")
		}
		app.server = srv
		return nil
	}
}

// Handler exposes the routed application for tests and embedding.
func (app *App) Handler() http.Handler { return app.router }

// Run starts the server and blocks until ctx is canceled.
func (app *App) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(app.server.Run(ctx, app.router))
	return g.Wait()
}

func (app *App) newContext(w http.ResponseWriter, r *http.Request, params map[string]string) *Context {
	return &Context{w: w, r: r, params: params, store: app.store}
}

// registerRoutes declares every endpoint. Fixed paths register before
// overlapping captures so /users/me is not swallowed by /users/{user_id}.
func (app *App) registerRoutes(r router.Router[*Context]) {
	r.Get("/", root)

	r.Get("/items", listItems)
	r.Post("/items", createItem)
	r.Get("/items/{item_id}", readItem)
	r.Put("/items/{item_id}", updateItem)
	r.Get("/items/{item_id}/name", readItemName)
	r.Get("/items/{item_id}/public", readItemPublic)

	r.Get("/users/me", readCurrentUser)
	r.Get("/users/{user_id}/items/{item_id}", readUserItem)
	r.Post("/users", createUser)

	r.Get("/models/{model_name}", readModel)
	r.Get("/files/{file_path...}", readFile)
	r.Get("/client", readClientInfo)

	r.Get("/listings/{listing_id}", readListing)
	r.Post("/listings", createListing)

	r.Post("/images/multiple", createImages)
	r.Post("/offers", createOffer)
	r.Post("/login", login)
}
