package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB   int    `mapstructure:"REDIS_AUTH_DB"`

	// Auth.
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Gemini model configuration (chat + embeddings).
	GeminiAPIKey   string `mapstructure:"GEMINI_API_KEY"`
	ChatModel      string `mapstructure:"CHAT_MODEL"`
	EmbeddingModel string `mapstructure:"EMBEDDING_MODEL"`

	// Retrieval defaults.
	VectorSearchLimit int `mapstructure:"VECTOR_SEARCH_LIMIT"`

	// Booking provider APIs.
	AirlineAPIKey     string `mapstructure:"AIRLINE_API_KEY"`
	AirlineAPIURL     string `mapstructure:"AIRLINE_API_URL"`
	HotelAPIKey       string `mapstructure:"HOTEL_API_KEY"`
	HotelAPIURL       string `mapstructure:"HOTEL_API_URL"`
	TransportAPIKey   string `mapstructure:"TRANSPORT_API_KEY"`
	TransportAPIURL   string `mapstructure:"TRANSPORT_API_URL"`
	RestaurantAPIKey  string `mapstructure:"RESTAURANT_API_KEY"`
	RestaurantAPIURL  string `mapstructure:"RESTAURANT_API_URL"`
	AttractionsAPIKey string `mapstructure:"ATTRACTIONS_API_KEY"`
	AttractionsAPIURL string `mapstructure:"ATTRACTIONS_API_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "tripmate")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("CHAT_MODEL", "models/gemini-1.5-pro")
	viper.SetDefault("EMBEDDING_MODEL", "models/text-embedding-004")
	viper.SetDefault("VECTOR_SEARCH_LIMIT", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	validateRequired()
}

// validateRequired aborts the process when a required value is absent.
func validateRequired() {
	required := map[string]string{
		"JWT_SECRET":          AppConfig.JWTSecret,
		"GEMINI_API_KEY":      AppConfig.GeminiAPIKey,
		"AIRLINE_API_KEY":     AppConfig.AirlineAPIKey,
		"AIRLINE_API_URL":     AppConfig.AirlineAPIURL,
		"HOTEL_API_KEY":       AppConfig.HotelAPIKey,
		"HOTEL_API_URL":       AppConfig.HotelAPIURL,
		"TRANSPORT_API_KEY":   AppConfig.TransportAPIKey,
		"TRANSPORT_API_URL":   AppConfig.TransportAPIURL,
		"RESTAURANT_API_KEY":  AppConfig.RestaurantAPIKey,
		"RESTAURANT_API_URL":  AppConfig.RestaurantAPIURL,
		"ATTRACTIONS_API_KEY": AppConfig.AttractionsAPIKey,
		"ATTRACTIONS_API_URL": AppConfig.AttractionsAPIURL,
	}
	for name, v := range required {
		if v == "" {
			log.Fatalf("Missing required configuration value: %s", name)
		}
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
