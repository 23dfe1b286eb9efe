package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		USCCB
		ReadingsSync
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}

	Database struct {
		Path string
	}

	USCCB struct {
		BaseURL       string        // Daily readings URL prefix, date appended as MMDDYYYY.cfm
		ProxyURL      string        // CORS relay used when the direct fetch fails
		DirectTimeout time.Duration // Timeout for the direct attempt
		ProxyTimeout  time.Duration // Timeout for the proxied attempt
	}

	ReadingsSync struct {
		Enabled  bool
		Schedule string // Cron format: "0 5 * * *" = daily at 05:00
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8177)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// USCCB readings source defaults
	v.SetDefault("usccb_base_url", "https://bible.usccb.org/bible/readings")
	v.SetDefault("usccb_proxy_url", "https://api.allorigins.win/raw?url=")
	v.SetDefault("usccb_direct_timeout", "10s")
	v.SetDefault("usccb_proxy_timeout", "15s")

	// Daily readings prefetch defaults
	v.SetDefault("readings_sync_enabled", true)
	v.SetDefault("readings_sync_schedule", "0 5 * * *") // Daily at 05:00

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		USCCB: USCCB{
			BaseURL:       v.GetString("USCCB_BASE_URL"),
			ProxyURL:      v.GetString("USCCB_PROXY_URL"),
			DirectTimeout: v.GetDuration("USCCB_DIRECT_TIMEOUT"),
			ProxyTimeout:  v.GetDuration("USCCB_PROXY_TIMEOUT"),
		},
		ReadingsSync: ReadingsSync{
			Enabled:  v.GetBool("READINGS_SYNC_ENABLED"),
			Schedule: v.GetString("READINGS_SYNC_SCHEDULE"),
		},
	}
}
