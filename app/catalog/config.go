package catalog

import "github.com/TylerBromley/bindkit/core/server"

// Config holds the application configuration loaded from the environment.
type Config struct {
	Server server.Config

	AppName  string `env:"APP_NAME" envDefault:"catalog"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}
