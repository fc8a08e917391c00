package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/addrwatch/btctracker/internal/types/environments"
)

type AppConfig struct {
	Environment environments.Environment
	ApiServer   ApiServerConfig
	Bitcoin     BitcoinConfig

	// RefreshPeriod is a cron spec (e.g. "@every 10m") for re-fetching the
	// currently tracked address. Empty disables the refresh job.
	RefreshPeriod string
}

type ApiServerConfig struct {
	ListenAddr     string
	AllowedOrigins string
}

type BitcoinConfig struct {
	ChainAPIURL  string
	FetchTimeout time.Duration
}

const (
	defaultChainAPIURL  = "https://blockchain.info"
	defaultListenAddr   = ":8080"
	defaultFetchTimeout = 10 * time.Second
)

func New() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// this will not override env variables if they already exist
	godotenv.Load(".env." + env)

	return &AppConfig{
		Environment: environments.Environment(env),
		ApiServer: ApiServerConfig{
			ListenAddr:     envVarOrDefault("LISTEN_ADDR", defaultListenAddr),
			AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		},
		Bitcoin: BitcoinConfig{
			ChainAPIURL:  envVarOrDefault("BTC_CHAIN_API_URL", defaultChainAPIURL),
			FetchTimeout: envVarSeconds("BTC_FETCH_TIMEOUT_SECONDS", defaultFetchTimeout),
		},
		RefreshPeriod: os.Getenv("REFRESH_PERIOD"),
	}
}

func envVarOrDefault(envName, defaultValue string) string {
	value := os.Getenv(envName)
	if value == "" {
		return defaultValue
	}

	return value
}

func envVarSeconds(envName string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(envName)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		return defaultValue
	}

	return time.Duration(value) * time.Second
}
