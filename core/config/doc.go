// Package config provides type-safe environment variable loading with
// per-type caching using Go generics. It loads a .env file on first use and
// parses environment variables into struct fields via caarlos0/env tags.
//
//	type Config struct {
//		Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Each configuration type is loaded only once per process lifetime; repeated
// calls return the cached value.
package config
