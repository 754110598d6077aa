package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string

	MongoURI      string
	MongoDatabase string

	JWTSecret string
	JWTTTL    time.Duration

	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	AllowedOrigins []string

	RateLimitWindow      time.Duration
	RateLimitMaxRequests int
}

// Load reads configuration from the environment, preloading a .env file
// when one is present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return &Config{
		Port:        GetEnvAsString("PORT", "5000"),
		Environment: GetEnvAsString("ENVIRONMENT", "development"),

		MongoURI:      GetEnvAsString("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: GetEnvAsString("MONGODB_DATABASE", "taskboard"),

		JWTSecret: GetEnvAsString("JWT_SECRET", ""),
		JWTTTL:    GetEnvAsDuration("JWT_TTL", 24*time.Hour),

		RedisURL:      GetEnvAsString("REDIS_URL", ""),
		RedisHost:     GetEnvAsString("REDIS_HOST", ""),
		RedisPort:     GetEnvAsString("REDIS_PORT", "6379"),
		RedisPassword: GetEnvAsString("REDIS_PASSWORD", ""),
		RedisDB:       GetEnvAsInt("REDIS_DB", 0),

		AllowedOrigins: GetEnvAsSlice("ALLOWED_ORIGINS", []string{
			"http://localhost:5173",
			"http://localhost:3000",
		}),

		RateLimitWindow:      GetEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		RateLimitMaxRequests: GetEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 10),
	}
}
