package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	EmailDomain string // institutional domain suffix required at signup

	EmailSender string
	Password    string // SMTP Password
	AdminEmail  string // recipient of the daily stats digest

	MessWebhookURL string // optional complaint webhook endpoint
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", ""),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "messfeed"),
		DBPort:     getEnv("DB_PORT", "5432"),

		EmailDomain: getEnv("EMAIL_DOMAIN", "@iitkgp.ac.in"),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("PASSWORD", ""),
		AdminEmail:  getEnv("ADMIN_EMAIL", ""),

		MessWebhookURL: getEnv("MESS_WEBHOOK_URL", ""),
	}

	// Every issued token depends on this secret.
	if AppConfig.JWTKey == "" {
		log.Fatal("JWT_SECRET_KEY must be set")
	}
	if AppConfig.AdminEmail == "" {
		log.Println("Warning: ADMIN_EMAIL not set. Daily digest emails are disabled.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
