package config

import (
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v8"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type MongoDBConfig struct {
	URI      string        `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	Database string        `env:"MONGODB_DATABASE" envDefault:"catalog"`
	Timeout  time.Duration `env:"MONGODB_TIMEOUT" envDefault:"10s"`
}

type JWTConfig struct {
	Secret string        `env:"JWT_SECRET,required,notEmpty"`
	TTL    time.Duration `env:"JWT_TTL" envDefault:"24h"`
}

type UploadConfig struct {
	ImageDir string `env:"IMAGE_DIR" envDefault:"public/images/products"`
	MaxSize  string `env:"UPLOAD_MAX_SIZE" envDefault:"10M"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Pretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

type Config struct {
	Port            string        `env:"PORT" envDefault:"3000"`
	CORSWhitelist   []string      `env:"CORS_WHITELIST" envSeparator:"," envDefault:"http://localhost:3000,https://localhost:3443"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Tracing is off while CollectorHost is empty.
	CollectorHost    string  `env:"COLLECTOR_HOST"`
	CollectorPort    string  `env:"COLLECTOR_PORT" envDefault:"4318"`
	TraceSampleRatio float64 `env:"TRACE_SAMPLE_RATIO" envDefault:"1"`

	MongoDB MongoDBConfig
	JWT     JWTConfig
	Upload  UploadConfig
	Log     LogConfig
}

// LoadEnv loads environment variables from a .env file
func LoadEnv() {
	if err := godotenv.Load(".env"); err != nil {
		log.Info().Str("component", "config").Msg("no .env file, using process environment")
	}
}

// Load reads the .env file (when present) and parses the environment into a Config.
func Load() (*Config, error) {
	LoadEnv()
	return Parse()
}

// Parse builds a Config from the current process environment only.
func Parse() (*Config, error) {
	cfg := new(Config)
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	cfg.normalize()
	return cfg, nil
}

// LoadMongoDB reads only the database settings, for tools that do not serve HTTP.
func LoadMongoDB() (*MongoDBConfig, error) {
	LoadEnv()
	cfg := new(MongoDBConfig)
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse env")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return cfg, nil
}

func (c *Config) normalize() {
	whitelist := c.CORSWhitelist[:0]
	for _, origin := range c.CORSWhitelist {
		if origin = strings.TrimSpace(origin); origin != "" {
			whitelist = append(whitelist, origin)
		}
	}
	c.CORSWhitelist = whitelist

	if c.MongoDB.Timeout <= 0 {
		c.MongoDB.Timeout = 10 * time.Second
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	c.TraceSampleRatio = min(max(c.TraceSampleRatio, 0), 1)
}

// CollectorEndpoint is the host:port the OTLP/HTTP exporter sends to.
func (c *Config) CollectorEndpoint() string {
	return net.JoinHostPort(c.CollectorHost, c.CollectorPort)
}
