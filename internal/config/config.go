// AngelaMos | 2026
// config.go

package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App       AppConfig       `koanf:"app"`
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Redis     RedisConfig     `koanf:"redis"`
	JWT       JWTConfig       `koanf:"jwt"`
	Cache     CacheConfig     `koanf:"cache"`
	Media     MediaConfig     `koanf:"media"`
	Bootstrap BootstrapConfig `koanf:"bootstrap"`
	CORS      CORSConfig      `koanf:"cors"`
	Log       LogConfig       `koanf:"log"`
	Otel      OtelConfig      `koanf:"otel"`
}

type AppConfig struct {
	Name        string `koanf:"name"`
	Version     string `koanf:"version"`
	Environment string `koanf:"environment"`
}

type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes"`
}

type DatabaseConfig struct {
	URL             string        `koanf:"url"`
	MaxOpenConns    int           `koanf:"max_open_conns"`
	MaxIdleConns    int           `koanf:"max_idle_conns"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time"`
	AutoMigrate     bool          `koanf:"auto_migrate"`
}

type RedisConfig struct {
	URL          string `koanf:"url"`
	PoolSize     int    `koanf:"pool_size"`
	MinIdleConns int    `koanf:"min_idle_conns"`
}

// JWTConfig holds session token settings. Expire uses the "<n>d|h|m"
// grammar shared by the token and its cookie.
type JWTConfig struct {
	Secret     string `koanf:"secret"`
	Expire     string `koanf:"expire"`
	Issuer     string `koanf:"issuer"`
	CookieName string `koanf:"cookie_name"`
}

type CacheConfig struct {
	Enabled bool          `koanf:"enabled"`
	TTL     time.Duration `koanf:"ttl"`
	Prefix  string        `koanf:"prefix"`
}

type MediaConfig struct {
	CloudinaryURL string  `koanf:"cloudinary_url"`
	CloudName     string  `koanf:"cloud_name"`
	APIKey        string  `koanf:"api_key"`
	APISecret     string  `koanf:"api_secret"`
	UploadFolder  string  `koanf:"upload_folder"`
	MaxFileSize   int64   `koanf:"max_file_size"`
	MaxFiles      int     `koanf:"max_files"`
	AdminRate     float64 `koanf:"admin_rate"`
	AdminBurst    int     `koanf:"admin_burst"`
}

// BootstrapConfig describes the admin created when the credential store
// is empty at startup. Leaving Email blank disables bootstrapping.
type BootstrapConfig struct {
	Name     string `koanf:"name"`
	Email    string `koanf:"email"`
	Phone    string `koanf:"phone"`
	Password string `koanf:"password"`
}

type CORSConfig struct {
	AllowedOrigins   []string `koanf:"allowed_origins"`
	AllowedMethods   []string `koanf:"allowed_methods"`
	AllowedHeaders   []string `koanf:"allowed_headers"`
	AllowCredentials bool     `koanf:"allow_credentials"`
	MaxAge           int      `koanf:"max_age"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

type OtelConfig struct {
	Endpoint    string  `koanf:"endpoint"`
	ServiceName string  `koanf:"service_name"`
	Enabled     bool    `koanf:"enabled"`
	Insecure    bool    `koanf:"insecure"`
	SampleRate  float64 `koanf:"sample_rate"`
}

const minProductionSecretLen = 32

var (
	cfg  *Config
	once sync.Once
)

func Load(configPath string) (*Config, error) {
	var loadErr error

	once.Do(func() {
		c, err := load(configPath)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})

	if loadErr != nil {
		return nil, loadErr
	}

	return cfg, nil
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := loadDefaults(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKeyReplacer), nil); err != nil {
		return nil, fmt.Errorf("load env vars: %w", err)
	}

	c := &Config{}
	if err := k.Unmarshal("", c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(c); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return c, nil
}

func Get() *Config {
	if cfg == nil {
		panic("config not loaded: call Load() first")
	}
	return cfg
}

func loadDefaults(k *koanf.Koanf) error {
	defaults := map[string]any{
		"app.name":        "Portfolio CMS",
		"app.version":     "1.0.0",
		"app.environment": "development",

		"server.host":             "0.0.0.0",
		"server.port":             5000,
		"server.read_timeout":     "30s",
		"server.write_timeout":    "60s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "15s",
		"server.max_body_bytes":   10 << 20,

		"database.max_open_conns":     25,
		"database.max_idle_conns":     5,
		"database.conn_max_lifetime":  "1h",
		"database.conn_max_idle_time": "30m",
		"database.auto_migrate":       true,

		"redis.pool_size":      10,
		"redis.min_idle_conns": 2,

		"jwt.expire":      "7d",
		"jwt.issuer":      "portfolio-cms",
		"jwt.cookie_name": "token",

		"cache.enabled": true,
		"cache.ttl":     "10m",
		"cache.prefix":  "cms:",

		"media.upload_folder": "uploads",
		"media.max_file_size": 5 << 20,
		"media.max_files":     10,
		"media.admin_rate":    5.0,
		"media.admin_burst":   10,

		"cors.allowed_origins": []string{"http://localhost:3000"},
		"cors.allowed_methods": []string{
			"GET",
			"POST",
			"PUT",
			"PATCH",
			"DELETE",
			"OPTIONS",
		},
		"cors.allowed_headers": []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Request-ID",
		},
		"cors.allow_credentials": true,
		"cors.max_age":           300,

		"log.level":  "info",
		"log.format": "json",

		"otel.enabled":      false,
		"otel.insecure":     true,
		"otel.sample_rate":  0.1,
		"otel.service_name": "portfolio-cms",
	}

	for key, value := range defaults {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("set default %s: %w", key, err)
		}
	}

	return nil
}

var envKeyMap = map[string]string{
	"DATABASE_URL":                "database.url",
	"DATABASE_AUTO_MIGRATE":       "database.auto_migrate",
	"REDIS_URL":                   "redis.url",
	"NODE_ENV":                    "app.environment",
	"ENVIRONMENT":                 "app.environment",
	"HOST":                        "server.host",
	"PORT":                        "server.port",
	"LOG_LEVEL":                   "log.level",
	"LOG_FORMAT":                  "log.format",
	"JWT_SECRET":                  "jwt.secret",
	"JWT_EXPIRE":                  "jwt.expire",
	"JWT_ISSUER":                  "jwt.issuer",
	"JWT_COOKIE_NAME":             "jwt.cookie_name",
	"CACHE_ENABLED":               "cache.enabled",
	"CACHE_TTL":                   "cache.ttl",
	"CLOUDINARY_URL":              "media.cloudinary_url",
	"CLOUDINARY_CLOUD_NAME":       "media.cloud_name",
	"CLOUDINARY_API_KEY":          "media.api_key",
	"CLOUDINARY_API_SECRET":       "media.api_secret",
	"UPLOAD_FOLDER":               "media.upload_folder",
	"BOOTSTRAP_ADMIN_NAME":        "bootstrap.name",
	"BOOTSTRAP_ADMIN_EMAIL":       "bootstrap.email",
	"BOOTSTRAP_ADMIN_PHONE":       "bootstrap.phone",
	"BOOTSTRAP_ADMIN_PASSWORD":    "bootstrap.password",
	"OTEL_ENDPOINT":               "otel.endpoint",
	"OTEL_EXPORTER_OTLP_ENDPOINT": "otel.endpoint",
	"OTEL_SERVICE_NAME":           "otel.service_name",
	"OTEL_ENABLED":                "otel.enabled",
	"OTEL_INSECURE":               "otel.insecure",
	"OTEL_SAMPLE_RATE":            "otel.sample_rate",
}

func envKeyReplacer(s string) string {
	if mapped, ok := envKeyMap[s]; ok {
		return mapped
	}
	return ""
}

func validate(c *Config) error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Redis.URL == "" {
		return fmt.Errorf("REDIS_URL is required")
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if c.JWT.CookieName == "" {
		return fmt.Errorf("jwt.cookie_name must not be empty")
	}

	if c.CORS.AllowCredentials {
		for _, origin := range c.CORS.AllowedOrigins {
			if origin == "*" {
				return fmt.Errorf(
					"CORS wildcard '*' cannot be used with AllowCredentials",
				)
			}
		}
	}

	if c.IsProduction() {
		if len(c.JWT.Secret) < minProductionSecretLen {
			return fmt.Errorf(
				"JWT_SECRET must be at least %d bytes in production",
				minProductionSecretLen,
			)
		}
		if c.Otel.Enabled && c.Otel.Insecure {
			return fmt.Errorf("OTEL_INSECURE must be false in production")
		}
	}

	if c.Bootstrap.Email != "" && c.Bootstrap.Password == "" {
		return fmt.Errorf("BOOTSTRAP_ADMIN_PASSWORD is required with BOOTSTRAP_ADMIN_EMAIL")
	}

	if c.Media.MaxFiles < 1 {
		return fmt.Errorf("media.max_files must be positive")
	}

	if c.Media.MaxFileSize <= 0 {
		return fmt.Errorf("media.max_file_size must be positive")
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server.read_timeout must be positive")
	}

	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server.write_timeout must be positive")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// HasCloudinary reports whether enough credentials exist to reach the
// media host.
func (m *MediaConfig) HasCloudinary() bool {
	return m.CloudinaryURL != "" ||
		(m.CloudName != "" && m.APIKey != "" && m.APISecret != "")
}
