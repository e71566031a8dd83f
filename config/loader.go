package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// LoadAppConfig loads and validates the application configuration from config.yml.
// TFL_APP_ID, TFL_APP_KEY and PORT environment variables override file values so
// credentials never have to live in the config file.
func LoadAppConfig() (AppConfig, error) {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return AppConfig{}, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AppConfig{}, err
	}
	applyEnv(&cfg)
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return AppConfig{}, err
	}
	if err := v.Struct(cfg.TfL); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("TFL_APP_ID"); v != "" {
		cfg.TfL.AppID = v
	}
	if v := os.Getenv("TFL_APP_KEY"); v != "" {
		cfg.TfL.AppKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8090
	}
	if cfg.TfL.BaseURL == "" {
		cfg.TfL.BaseURL = "https://api.tfl.gov.uk"
	}
	if cfg.TfL.TimeoutMS == 0 {
		cfg.TfL.TimeoutMS = 10000
	}
	if cfg.Prefs.Path == "" {
		cfg.Prefs.Path = "golondon.db"
	}
	if cfg.Cache.StatusTTLSeconds == 0 {
		cfg.Cache.StatusTTLSeconds = 60
	}
}
