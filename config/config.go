package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Data     Data
}

type Server struct {
	Port string
}
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Data points at the JSON files the scoring engine loads once at startup:
// the correct-answer key and the pathway metadata catalog.
type Data struct {
	AnswerKeyPath string
	PathwaysPath  string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	viper.SetDefault("ANSWER_KEY_PATH", "data/answers.json")
	viper.SetDefault("PATHWAYS_PATH", "data/pathways.json")

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Data.AnswerKeyPath = viper.GetString("ANSWER_KEY_PATH")
	config.Data.PathwaysPath = viper.GetString("PATHWAYS_PATH")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
