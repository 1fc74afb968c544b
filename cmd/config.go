package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"storefront/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the process configuration, read from the environment.
type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	JWTSecret              string
	SLAWindow              time.Duration
	SLASweepInterval       time.Duration
	DispatchInterval       time.Duration
	DispatchBatch          int
	KafkaHost              string
	KafkaOrderChangedTopic string
	ShutdownTimeout        time.Duration
}

var defaults = map[string]any{
	"HTTP_PORT":                 "8080",
	"DB_HOST":                   "localhost",
	"DB_PORT":                   "5432",
	"DB_SSLMODE":                "disable",
	"SLA_WINDOW":                "2m",
	"SLA_SWEEP_INTERVAL":        "30s",
	"DISPATCH_INTERVAL":         "15s",
	"DISPATCH_BATCH":            50,
	"KAFKA_ORDER_CHANGED_TOPIC": "order.changed",
	"SHUTDOWN_TIMEOUT":          "10s",
}

// LoadConfig reads envFile when it exists, then the process environment.
// Real environment variables win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	// Unset keys without a default are invisible to AutomaticEnv lookups.
	for _, key := range []string{"DB_USER", "DB_PASSWORD", "DB_NAME", "JWT_SECRET", "KAFKA_HOST"} {
		if err := v.BindEnv(key); err != nil {
			return Config{}, err
		}
	}
	v.AutomaticEnv()

	cfg := Config{
		HTTPPort:               v.GetString("HTTP_PORT"),
		DBHost:                 v.GetString("DB_HOST"),
		DBPort:                 v.GetString("DB_PORT"),
		DBUser:                 v.GetString("DB_USER"),
		DBPassword:             v.GetString("DB_PASSWORD"),
		DBName:                 v.GetString("DB_NAME"),
		DBSslMode:              v.GetString("DB_SSLMODE"),
		JWTSecret:              v.GetString("JWT_SECRET"),
		SLAWindow:              v.GetDuration("SLA_WINDOW"),
		SLASweepInterval:       v.GetDuration("SLA_SWEEP_INTERVAL"),
		DispatchInterval:       v.GetDuration("DISPATCH_INTERVAL"),
		DispatchBatch:          v.GetInt("DISPATCH_BATCH"),
		KafkaHost:              v.GetString("KAFKA_HOST"),
		KafkaOrderChangedTopic: v.GetString("KAFKA_ORDER_CHANGED_TOPIC"),
		ShutdownTimeout:        v.GetDuration("SHUTDOWN_TIMEOUT"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks required settings. The sweep runs at least twice per SLA
// window so an unaccepted delivery is reclaimed within 1.5 windows.
func (c Config) Validate() error {
	var problems []error

	if c.HTTPPort == "" {
		problems = append(problems, errs.NewValueIsRequiredError("HTTP_PORT"))
	}
	if c.DBName == "" {
		problems = append(problems, errs.NewValueIsRequiredError("DB_NAME"))
	}
	if c.JWTSecret == "" {
		problems = append(problems, errs.NewValueIsRequiredError("JWT_SECRET"))
	}
	if c.SLAWindow <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"SLA_WINDOW", fmt.Errorf("%s is not positive", c.SLAWindow)))
	}
	if c.SLASweepInterval <= 0 || c.SLASweepInterval > c.SLAWindow/2 {
		problems = append(problems, errs.NewValueIsOutOfRangeError(
			"SLA_SWEEP_INTERVAL", c.SLASweepInterval, time.Duration(0), c.SLAWindow/2))
	}
	if c.DispatchInterval <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"DISPATCH_INTERVAL", fmt.Errorf("%s is not positive", c.DispatchInterval)))
	}
	if c.DispatchBatch <= 0 {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"DISPATCH_BATCH", fmt.Errorf("%d is not positive", c.DispatchBatch)))
	}
	if c.KafkaHost != "" && c.KafkaOrderChangedTopic == "" {
		problems = append(problems, errs.NewValueIsRequiredError("KAFKA_ORDER_CHANGED_TOPIC"))
	}

	return errors.Join(problems...)
}
