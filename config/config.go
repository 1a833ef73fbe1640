package config

import (
	"fmt"
	"time"

	"gest35bi/logger"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port" validate:"required,numeric"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type Database struct {
	URI            string        `mapstructure:"mongo_uri" validate:"required"`
	Name           string        `mapstructure:"mongo_database" validate:"required"`
	Collection     string        `mapstructure:"mongo_collection" validate:"required"`
	ConnectTimeout time.Duration `mapstructure:"mongo_connect_timeout" validate:"gt=0"`
}

// Addr is the listen address of the HTTP server.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("HOST", "")
	v.SetDefault("PORT", "3000")
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "indicadores")
	// Collection name Mongoose derived from the "Indicador" model.
	v.SetDefault("MONGO_COLLECTION", "indicadors")
	v.SetDefault("MONGO_CONNECT_TIMEOUT", "10s")
}

// NewConfig loads an optional .env file, then reads the environment.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.L.Debug("no .env file loaded, using process environment")
	}
	return Load(viper.New())
}

// Load decodes configuration from v without touching .env files.
func Load(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	v.AutomaticEnv()

	config := &Config{}
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
