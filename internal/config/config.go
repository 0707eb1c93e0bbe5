// internal/config/config.go
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"server"`
	Frontend struct {
		Origins []string `mapstructure:"origins"`
	} `mapstructure:"frontend"`
	Storage struct {
		// Dir holds the persisted local-storage snapshots
		// (auth-storage, ui-storage).
		Dir string `mapstructure:"dir"`
	} `mapstructure:"storage"`
	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"logging"`
	Auth struct {
		// SharedSecret is the mock-directory credential; it is hashed
		// at startup. SharedSecretHash, when set, wins and must be a
		// PHC argon2id string (see scripts/genhash.go).
		SharedSecret     string `mapstructure:"shared_secret"`
		SharedSecretHash string `mapstructure:"shared_secret_hash"`
	} `mapstructure:"auth"`
	Seed struct {
		Demo bool `mapstructure:"demo"`
	} `mapstructure:"seed"`
	Security struct {
		RequestID struct {
			TrustHeader bool `mapstructure:"trust_header"`
		} `mapstructure:"request_id"`
		Session struct {
			TTL             time.Duration `mapstructure:"ttl"`
			SweeperInterval time.Duration `mapstructure:"sweeper_interval"`
			CookieSecure    bool          `mapstructure:"cookie_secure"`
			SameSite        string        `mapstructure:"same_site"`
		} `mapstructure:"session"`
		RateLimit struct {
			Enabled           bool          `mapstructure:"enabled"`
			RequestsPerMinute int           `mapstructure:"rpm"`
			Burst             int           `mapstructure:"burst"`
			TTL               time.Duration `mapstructure:"ttl"`
		} `mapstructure:"rate_limit"`
	} `mapstructure:"security"`
}

func Load() Config {
	viper.SetDefault("server.addr", "127.0.0.1:8080")
	viper.SetDefault("frontend.origins", []string{
		"http://localhost:5173", "http://localhost:3000",
		"http://127.0.0.1:5173", "http://127.0.0.1:3000",
	})
	viper.SetDefault("storage.dir", "./data")
	// Sensible logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	// Mock directory secret; override in any non-dev deployment
	viper.SetDefault("auth.shared_secret", "password")
	viper.SetDefault("seed.demo", false)
	// Security defaults
	viper.SetDefault("security.request_id.trust_header", false)
	viper.SetDefault("security.session.ttl", "8h")
	viper.SetDefault("security.session.sweeper_interval", "5m")
	viper.SetDefault("security.session.cookie_secure", false)
	viper.SetDefault("security.session.same_site", "lax")
	viper.SetDefault("security.rate_limit.enabled", true)
	viper.SetDefault("security.rate_limit.rpm", 120)
	viper.SetDefault("security.rate_limit.burst", 60)
	viper.SetDefault("security.rate_limit.ttl", "30m")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	_ = viper.ReadInConfig()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// explicit bindings
	_ = viper.BindEnv("server.addr", "SERVER_ADDR")
	_ = viper.BindEnv("storage.dir", "STORAGE_DIR")
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")
	_ = viper.BindEnv("logging.format", "LOG_FORMAT")
	_ = viper.BindEnv("auth.shared_secret", "AUTH_SHARED_SECRET")
	_ = viper.BindEnv("auth.shared_secret_hash", "AUTH_SHARED_SECRET_HASH")
	_ = viper.BindEnv("seed.demo", "SEED_DEMO")
	_ = viper.BindEnv("security.request_id.trust_header", "REQUEST_ID_TRUST_HEADER")
	_ = viper.BindEnv("security.session.ttl", "SESSION_TTL")
	_ = viper.BindEnv("security.session.sweeper_interval", "SESSION_SWEEPER_INTERVAL")
	_ = viper.BindEnv("security.session.cookie_secure", "SESSION_COOKIE_SECURE")
	_ = viper.BindEnv("security.session.same_site", "SESSION_SAME_SITE")
	_ = viper.BindEnv("security.rate_limit.enabled", "RATE_LIMIT_ENABLED")
	_ = viper.BindEnv("security.rate_limit.rpm", "RATE_LIMIT_RPM")
	_ = viper.BindEnv("security.rate_limit.burst", "RATE_LIMIT_BURST")
	_ = viper.BindEnv("security.rate_limit.ttl", "RATE_LIMIT_TTL")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		panic("config error: " + err.Error())
	}
	return c
}
