package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Mode values for Config.Mode.
const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)

// Config holds the process configuration, read from the environment
// (optionally seeded from a .env file).
type Config struct {
	Mode string `env:"JUMIA_MODE" envDefault:"production"`

	Token         string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"DISCORD_APP_ID"`
	Shards        int    `env:"JUMIA_SHARDS" envDefault:"0"` // 0 = ask the gateway
	SyncEvents    bool   `env:"JUMIA_SYNC_EVENTS" envDefault:"false"`
	Recover       bool   `env:"JUMIA_RECOVER" envDefault:"true"`
	Extensions    string `env:"JUMIA_EXTENSIONS" envDefault:"extensions.yml"`

	Log           string `env:"JUMIA_LOG"`
	LogMode       string `env:"JUMIA_LOG_MODE" envDefault:"TEXT"`
	LogLevel      string `env:"JUMIA_LOG_LEVEL"`
	LogMaxSize    int    `env:"JUMIA_LOG_MAX_SIZE" envDefault:"100"`
	LogMaxBackups int    `env:"JUMIA_LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `env:"JUMIA_LOG_MAX_AGE" envDefault:"28"`
	LogLocalTime  bool   `env:"JUMIA_LOG_LOCAL_TIME" envDefault:"true"`
}

// Conf is the configuration currently in effect.
var Conf = Config{Mode: ModeProduction}

// Load reads envfile (if it exists) into the process environment and parses
// the result into a Config. The returned Config also becomes Conf.
func Load(envfile string) (Config, error) {
	if envfile != "" {
		file, err := filepath.Abs(envfile)
		if err != nil {
			return Config{}, fmt.Errorf("config: resolve %s: %w", envfile, err)
		}
		if _, err := os.Stat(file); err == nil {
			if err := godotenv.Overload(file); err != nil {
				return Config{}, fmt.Errorf("config: read %s: %w", file, err)
			}
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}

	switch cfg.Mode {
	case ModeProduction, ModeDevelopment:
	default:
		return Config{}, fmt.Errorf("config: invalid JUMIA_MODE %q", cfg.Mode)
	}

	Conf = cfg
	return cfg, nil
}

// IsDevelopment reports whether the process runs in development mode.
func IsDevelopment() bool {
	return Conf.Mode == ModeDevelopment
}
