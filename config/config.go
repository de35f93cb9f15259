package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// listing backends
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendElastic  = "elastic"
)

type Config struct {
	// Server
	Port   string
	Env    string
	ApiKey string

	// Listing sources
	ListingsBackend  string
	ListingsSeedPath string
	DatabaseURL      string
	ElasticURL       string
	ElasticIndex     string

	// Cache
	RedisAddr     string
	RedisPassword string
	CacheTTL      time.Duration

	// Kafka
	KafkaBrokers []string

	// Search
	GeographyDataPath string
	NearbyRadiusKm    float64
	MinMatches        int
	SearchTimeout     time.Duration
}

func Load() *Config {
	return &Config{
		Port:   getEnv("PORT", "8000"),
		Env:    getEnv("env", "production"),
		ApiKey: getEnv("ApiKey", ""),

		ListingsBackend:  strings.ToLower(getEnv("LISTINGS_BACKEND", BackendMemory)),
		ListingsSeedPath: getEnv("LISTINGS_SEED_PATH", ""),
		DatabaseURL:      getEnv("DB_CONN_STR", ""),
		ElasticURL:       getEnv("ELASTIC_CONN_STR", ""),
		ElasticIndex:     getEnv("ElasticIndex", "listings"),

		RedisAddr:     getEnv("RedisAddr", ""),
		RedisPassword: getEnv("RedisPassword", ""),
		CacheTTL:      getEnvAsDuration("CACHE_TTL", 5*time.Minute),

		KafkaBrokers: getEnvAsList("KAFKA_BROKERS"),

		GeographyDataPath: getEnv("GEOGRAPHY_DATA_PATH", ""),
		NearbyRadiusKm:    getEnvAsFloat("SEARCH_NEARBY_RADIUS_KM", 80),
		MinMatches:        getEnvAsInt("SEARCH_MIN_MATCHES", 1),
		SearchTimeout:     getEnvAsDuration("SEARCH_TIMEOUT", 5*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma separated value, dropping empty entries.
func getEnvAsList(key string) []string {
	var out []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
