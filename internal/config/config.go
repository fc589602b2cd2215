package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Rides struct {
		PendingTimeoutMinutes int `yaml:"pending_timeout_minutes"`
		SweepIntervalSeconds  int `yaml:"sweep_interval_seconds"`
	} `yaml:"rides"`
}

func LoadConfig() Config {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config/config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	if cfg.Rides.PendingTimeoutMinutes == 0 {
		cfg.Rides.PendingTimeoutMinutes = 10
	}
	if cfg.Rides.SweepIntervalSeconds == 0 {
		cfg.Rides.SweepIntervalSeconds = 60
	}
	return cfg
}
