package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	Environment       string
	StartingCoins     int64
	SimulatorInterval time.Duration
	SimulatorChance   float64
	PaymentLatency    time.Duration
	PaymentFeeRate    float64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		Environment:       getEnv("ENVIRONMENT", "development"),
		StartingCoins:     getEnvAsInt64("STARTING_COINS", 1000),
		SimulatorInterval: getEnvAsDuration("SIMULATOR_INTERVAL", time.Minute),
		SimulatorChance:   getEnvAsFloat("SIMULATOR_CHANCE", 0.3),
		PaymentLatency:    getEnvAsDuration("PAYMENT_LATENCY", 1500*time.Millisecond),
		PaymentFeeRate:    getEnvAsFloat("PAYMENT_FEE_RATE", 0.05),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		floatValue, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return defaultValue
}
