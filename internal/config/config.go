package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppCfg struct{ Env, Port string }

type StoreCfg struct {
	Driver     string // DriverPostgres or DriverSQLite
	DSN        string
	SQLitePath string
}

type RedisCfg struct {
	Addr            string // empty disables rate limiting
	RateLimitPerMin int
}

type Cfg struct {
	App   AppCfg
	Store StoreCfg
	Redis RedisCfg
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func Load() Cfg {
	// 1) Load .env into process env (if file exists)
	_ = godotenv.Load()

	// 2) Read from env via viper
	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("STORE_DRIVER", DriverPostgres)
	viper.SetDefault("RATE_LIMIT_PER_MIN", 300)

	cfg := Cfg{
		App: AppCfg{
			Env:  viper.GetString("APP_ENV"),
			Port: viper.GetString("APP_PORT"),
		},
		Store: StoreCfg{
			Driver:     strings.ToLower(strings.TrimSpace(viper.GetString("STORE_DRIVER"))),
			DSN:        viper.GetString("DB_DSN"),
			SQLitePath: viper.GetString("SQLITE_PATH"),
		},
		Redis: RedisCfg{
			Addr:            viper.GetString("REDIS_ADDR"),
			RateLimitPerMin: viper.GetInt("RATE_LIMIT_PER_MIN"),
		},
	}

	// 3) Fail fast on required settings
	switch cfg.Store.Driver {
	case DriverPostgres:
		if cfg.Store.DSN == "" {
			log.Fatal().Msg("DB_DSN is required when STORE_DRIVER=postgres")
		}
	case DriverSQLite:
		if cfg.Store.SQLitePath == "" {
			log.Fatal().Msg("SQLITE_PATH is required when STORE_DRIVER=sqlite")
		}
	default:
		log.Fatal().Str("driver", cfg.Store.Driver).Msg("unsupported STORE_DRIVER")
	}

	return cfg
}
