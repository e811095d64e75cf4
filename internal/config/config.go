package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

type Config struct {
	Port              string
	MongoURI          string
	DatabaseName      string
	AccessTokenSecret string
	Origin            string
	SMTP              SMTPConfig
	Timeout           time.Duration
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		if os.IsNotExist(err) {
			// .env file not found, proceed with environment values
		} else {
			panic("Error loading .env file")
		}
	}
	return Config{
		Port:              getEnv("PORT", "5000"),
		MongoURI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DatabaseName:      getEnv("DATABASE_NAME", "language-club"),
		AccessTokenSecret: getEnv("ACCESS_TOKEN_SECRET", "local-dev-secret"),
		Origin:            getEnv("CORS_ORIGIN", "*"),
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
		},
		Timeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
