package config

import "github.com/spf13/viper"

// Config holds all application configuration.
type Config struct {
	// Server configuration
	AppPort string

	// Database configuration. DBDriver is one of postgres, sqlite, memory.
	// For sqlite, DBDSN is the database file path.
	DBDriver          string
	DBDSN             string
	DBConnectionLimit int

	// RabbitMQ configuration. Empty URL disables event publishing.
	RabbitMQURL string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "shoppinglist.db")
	viper.SetDefault("DB_CONNECTION_LIMIT", 5)
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	return &Config{
		AppPort:           viper.GetString("APP_PORT"),
		DBDriver:          viper.GetString("DB_DRIVER"),
		DBDSN:             viper.GetString("DB_DSN"),
		DBConnectionLimit: viper.GetInt("DB_CONNECTION_LIMIT"),
		RabbitMQURL:       viper.GetString("RABBITMQ_URL"),
	}
}
