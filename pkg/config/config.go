package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv    string `name:"app-env" env:"APP_ENV" default:"dev" help:"Deployment environment."`
	LogLevel  string `name:"log-level" env:"LOG_LEVEL" default:"info" enum:"debug,info,warn,warning,error" help:"Log level."`
	LogFormat string `name:"log-format" env:"LOG_FORMAT" default:"json" enum:"json,text" help:"Log output format."`

	HTTPPort int `name:"http-port" env:"HTTP_PORT" default:"8080" help:"Storefront HTTP port."`
	GRPCPort int `name:"grpc-port" env:"GRPC_PORT" default:"8081" help:"gRPC health port."`

	CatalogFile string        `name:"catalog-file" env:"CATALOG_FILE" help:"TOML catalog seed; the built-in catalog is used when empty."`
	Currency    string        `name:"currency" env:"CURRENCY_SYMBOL" default:"Rs." help:"Currency symbol shown before prices."`
	SessionTTL  time.Duration `name:"session-ttl" env:"SESSION_TTL" default:"30m" help:"Idle time after which a shopper's cart is discarded."`
}

// Load parses flags and environment, after loading a .env file if present.
// Flags win over environment variables, which win over defaults.
func Load(name string, args []string, options ...kong.Option) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	options = append([]kong.Option{
		kong.Name(name),
		kong.Description("Single-screen storefront."),
	}, options...)
	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return Config{}, err
	}
	if _, err := parser.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
