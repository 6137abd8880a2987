package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Analyzer Analyzer
	Uploads  Uploads
}

type Server struct {
	Port          string
	PublicBaseURL string // base for URLs the external analyzer fetches files from
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Auth struct {
	JWTSecret string
}

// Analyzer holds the external CV-scoring worker configuration. BaseURL may be
// empty; the pipeline then only completes jobs when Simulate is enabled.
type Analyzer struct {
	BaseURL        string
	CallbackSecret string
	RequestTimeout time.Duration
	Simulate       bool
	SimulateDelay  time.Duration
}

type Uploads struct {
	Dir string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("UPLOAD_DIR", "./uploads/cv")
	viper.SetDefault("ANALYZER_TIMEOUT_SECONDS", 15)
	viper.SetDefault("ANALYZER_SIMULATE_DELAY_SECONDS", 3)

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.PublicBaseURL = viper.GetString("PUBLIC_BASE_URL")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")

	config.Analyzer.BaseURL = viper.GetString("ANALYZER_URL")
	config.Analyzer.CallbackSecret = viper.GetString("ANALYZER_CALLBACK_SECRET")
	config.Analyzer.RequestTimeout = time.Duration(viper.GetInt("ANALYZER_TIMEOUT_SECONDS")) * time.Second
	config.Analyzer.Simulate = viper.GetBool("ANALYZER_SIMULATE")
	config.Analyzer.SimulateDelay = time.Duration(viper.GetInt("ANALYZER_SIMULATE_DELAY_SECONDS")) * time.Second

	config.Uploads.Dir = viper.GetString("UPLOAD_DIR")

	log.Info().Str("port", config.Server.Port).Bool("analyzer_configured", config.Analyzer.BaseURL != "").Msg("Config loaded")
	return &config, nil
}
