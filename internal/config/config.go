package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	MockAPI   MockAPI   `mapstructure:",squash"`
	Summary   Summary   `mapstructure:",squash"`
	Anomaly   Anomaly   `mapstructure:",squash"`
	WebSocket WebSocket `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// MockAPI points at the upstream mock API providing store and order data
type MockAPI struct {
	BaseURL        string `mapstructure:"mock_api_base_url"`
	TimeoutSeconds int    `mapstructure:"mock_api_timeout_seconds"`
}

// Summary controls the cross-store fan-out used by the summary endpoints
type Summary struct {
	MaxConcurrentFetches int `mapstructure:"summary_max_concurrent_fetches"`
}

// Anomaly holds the thresholds for the built-in detection rules
type Anomaly struct {
	FailureRatePct        float64 `mapstructure:"anomaly_failure_rate_pct"`
	CancellationRatePct   float64 `mapstructure:"anomaly_cancellation_rate_pct"`
	SlowProcessingMinutes float64 `mapstructure:"anomaly_slow_processing_minutes"`
	HighValueAmount       float64 `mapstructure:"anomaly_high_value_amount"`
}

// WebSocket controls the /ws/orders push protocol
type WebSocket struct {
	PushIntervalSeconds int `mapstructure:"ws_push_interval_seconds"`
}

func (m MockAPI) Timeout() time.Duration {
	return time.Duration(m.TimeoutSeconds) * time.Second
}

func (w WebSocket) PushInterval() time.Duration {
	return time.Duration(w.PushIntervalSeconds) * time.Second
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("MOCK_API_BASE_URL", "https://assessment-6xdhr.ondigitalocean.app")
	viper.SetDefault("MOCK_API_TIMEOUT_SECONDS", 15)

	viper.SetDefault("SUMMARY_MAX_CONCURRENT_FETCHES", 4)

	viper.SetDefault("ANOMALY_FAILURE_RATE_PCT", 25.0)
	viper.SetDefault("ANOMALY_CANCELLATION_RATE_PCT", 15.0)
	viper.SetDefault("ANOMALY_SLOW_PROCESSING_MINUTES", 30.0)
	viper.SetDefault("ANOMALY_HIGH_VALUE_AMOUNT", 500.0)

	viper.SetDefault("WS_PUSH_INTERVAL_SECONDS", 5)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Load the .env file first so viper can pick the values up as env vars
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env): ", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile probes the usual locations for a .env file
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not resolve the current directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env file loaded from: ", location)
			return
		}
	}

	logrus.Debug("No .env file found, relying on environment variables and defaults")
}
