package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           int      `yaml:"port" validate:"gt=0"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// TfLConfig contains TfL Unified API access configuration
type TfLConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"omitempty,url"`
	AppID     string `yaml:"appID"`
	AppKey    string `yaml:"appKey"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// PrefsConfig contains the durable preference store configuration
type PrefsConfig struct {
	Path string `yaml:"path"`
}

// CacheConfig contains response cache configuration
type CacheConfig struct {
	StatusTTLSeconds int `yaml:"statusTTLSeconds" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server" validate:"required"`
	TfL    TfLConfig    `yaml:"tfl"`
	Prefs  PrefsConfig  `yaml:"prefs"`
	Cache  CacheConfig  `yaml:"cache"`
}
