package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port int
	Mode string // gin mode: debug | release | test
}

type DatabaseConfig struct {
	Driver   string // postgres | sqlite
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	Path     string // sqlite file path
	LogMode  bool
}

type ChatConfig struct {
	URL            string
	TimeoutSeconds int
}

type HydrationConfig struct {
	DailyGoalLiters   float64
	DefaultWindowDays int
}

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Chat      ChatConfig
	Hydration HydrationConfig
}

// Load reads configuration from the environment, with a .env file as
// an optional source for local development. Every key has a default so
// the server can boot with nothing but DB credentials set.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment as-is")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 8081)
	v.SetDefault("GIN_MODE", "debug")

	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_USER", "healthifyme")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "healthifyme")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_PATH", "data/healthifyme.db")
	v.SetDefault("DB_LOG_MODE", false)

	v.SetDefault("CHAT_URL", "http://localhost:5000/chat")
	v.SetDefault("CHAT_TIMEOUT_SECONDS", 10)

	v.SetDefault("WATER_GOAL_LITERS", 2.0)
	v.SetDefault("WATER_DEFAULT_WINDOW_DAYS", 7)

	return &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
			Mode: v.GetString("GIN_MODE"),
		},
		Database: DatabaseConfig{
			Driver:   v.GetString("DB_DRIVER"),
			Host:     v.GetString("DB_HOST"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			Port:     v.GetString("DB_PORT"),
			Path:     v.GetString("DB_PATH"),
			LogMode:  v.GetBool("DB_LOG_MODE"),
		},
		Chat: ChatConfig{
			URL:            v.GetString("CHAT_URL"),
			TimeoutSeconds: v.GetInt("CHAT_TIMEOUT_SECONDS"),
		},
		Hydration: HydrationConfig{
			DailyGoalLiters:   v.GetFloat64("WATER_GOAL_LITERS"),
			DefaultWindowDays: v.GetInt("WATER_DEFAULT_WINDOW_DAYS"),
		},
	}
}
