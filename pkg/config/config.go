package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var validate = validator.New()

// Config holds the service bootstrap settings.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Training TrainingConfig `mapstructure:"training"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host" validate:"required"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	Debug           bool          `mapstructure:"debug"`
	APIPrefix       string        `mapstructure:"api_prefix"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins" validate:"dive,eq=*|http_url"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	EnableMetrics   bool          `mapstructure:"enable_metrics"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// TrainingConfig configures the offline classifier trainer. The stratified
// split needs at least two samples of every class; below a few hundred
// samples the rarer classes can come up short.
type TrainingConfig struct {
	OutputDir string  `mapstructure:"output_dir" validate:"required"`
	Samples   int     `mapstructure:"samples" validate:"min=500"`
	Seed      int64   `mapstructure:"seed"`
	TestSize  float64 `mapstructure:"test_size" validate:"gt=0,lt=1"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// envBindings maps config keys to the environment variables that override
// them.
var envBindings = map[string]string{
	"server.host":             "HOST",
	"server.port":             "PORT",
	"server.debug":            "DEBUG",
	"server.api_prefix":       "API_PREFIX",
	"server.allowed_origins":  "ALLOWED_ORIGINS",
	"server.shutdown_timeout": "SHUTDOWN_TIMEOUT",
	"server.enable_metrics":   "ENABLE_METRICS",
	"log.level":               "LOG_LEVEL",
	"training.output_dir":     "MODEL_DIR",
	"training.samples":        "TRAINING_SAMPLES",
	"training.seed":           "TRAINING_SEED",
	"training.test_size":      "TRAINING_TEST_SIZE",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5001)
	v.SetDefault("server.debug", false)
	v.SetDefault("server.api_prefix", "/api/v1")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.enable_metrics", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("training.output_dir", "models")
	v.SetDefault("training.samples", 1000)
	v.SetDefault("training.seed", 42)
	v.SetDefault("training.test_size", 0.2)
}

// Load reads configuration from defaults, an optional YAML file and the
// environment, in increasing order of precedence. Variables from a .env file
// in the working directory are loaded first without overriding the real
// environment.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env failed: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
	}

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s failed: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}
	cfg.normalize()

	return &cfg, nil
}

func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if p := strings.TrimSpace(c.Server.APIPrefix); p != "" {
		c.Server.APIPrefix = "/" + strings.Trim(p, "/")
	}
	if c.Server.APIPrefix == "/" {
		c.Server.APIPrefix = ""
	}

	var origins []string
	for _, o := range c.Server.AllowedOrigins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				origins = append(origins, part)
			}
		}
	}
	c.Server.AllowedOrigins = origins
}

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	return validateStruct(c)
}

// Validate checks the server section alone, for callers that override it
// after loading.
func (s ServerConfig) Validate() error {
	return validateStruct(s)
}

// Validate checks the training section alone.
func (t TrainingConfig) Validate() error {
	return validateStruct(t)
}

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
