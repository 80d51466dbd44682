package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Site    SiteConfig
}

type ServerConfig struct {
	Port          string
	Env           string
	SessionSecret string
}

type StorageConfig struct {
	DatabasePath string
	LogoDir      string
	TemplateGlob string
}

type SiteConfig struct {
	Name string
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, checking environment variables: %v", err)
	}

	// Enable reading from OS environment variables as fallback/override
	viper.AutomaticEnv()
	viper.BindEnv("SERVER_PORT", "PORT") // Fallback to PORT if SERVER_PORT is missing

	// Hardcoded fallbacks for local runs
	viper.SetDefault("SERVER_PORT", "5000")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("SESSION_SECRET", "dev-secret-change-me")
	viper.SetDefault("DATABASE_PATH", "veritabani.db")
	viper.SetDefault("LOGO_DIR", "static/logos")
	viper.SetDefault("TEMPLATE_GLOB", "web/templates/*.html")
	viper.SetDefault("SITE_NAME", "Key Stock Admin")

	AppConfig = &Config{
		Server: ServerConfig{
			Port:          viper.GetString("SERVER_PORT"),
			Env:           viper.GetString("SERVER_ENV"),
			SessionSecret: viper.GetString("SESSION_SECRET"),
		},
		Storage: StorageConfig{
			DatabasePath: viper.GetString("DATABASE_PATH"),
			LogoDir:      viper.GetString("LOGO_DIR"),
			TemplateGlob: viper.GetString("TEMPLATE_GLOB"),
		},
		Site: SiteConfig{
			Name: viper.GetString("SITE_NAME"),
		},
	}

	log.Printf("Configuration loaded successfully:")
	log.Printf("- Server Port: %s", AppConfig.Server.Port)
	log.Printf("- Server Env: %s", AppConfig.Server.Env)
	log.Printf("- Session Secret: %s", func() string {
		if AppConfig.Server.SessionSecret != "dev-secret-change-me" {
			return "SET"
		}
		return "DEFAULT (dev only)"
	}())
	log.Printf("- Database Path: %s", AppConfig.Storage.DatabasePath)
	log.Printf("- Logo Dir: %s", AppConfig.Storage.LogoDir)
}
