package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisReviewDB int    `mapstructure:"REDIS_REVIEW_DB"`

	// External assignment service.
	AssignmentServiceURL string `mapstructure:"ASSIGNMENT_SERVICE_URL"`

	// Scheduling defaults.
	ClientWeekStart    string `mapstructure:"CLIENT_WEEK_START"`
	TrainerWeekStart   string `mapstructure:"TRAINER_WEEK_START"`
	MinBreakMinutes    int    `mapstructure:"MIN_BREAK_MINUTES"`
	ReviewSessionTTLMin int   `mapstructure:"REVIEW_SESSION_TTL_MIN"`
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
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_REVIEW_DB", 0)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("ASSIGNMENT_SERVICE_URL", "http://localhost:9090")
	// The client calendar view starts weeks on Sunday, the trainer booking
	// view on Monday. Both are configurable rather than hardcoded per page.
	viper.SetDefault("CLIENT_WEEK_START", "Sunday")
	viper.SetDefault("TRAINER_WEEK_START", "Monday")
	viper.SetDefault("MIN_BREAK_MINUTES", 15)
	viper.SetDefault("REVIEW_SESSION_TTL_MIN", 30)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
