// Package config loads the immutable process configuration: server address,
// CORS origins, the chat-completion service credential and the monitoring
// data path. Built once at startup and passed by injection; core logic never
// reads ambient state.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Server struct {
	Host        string   `mapstructure:"host"`
	Port        string   `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type Assistant struct {
	APIKey         string  `mapstructure:"api_key"`
	BaseURL        string  `mapstructure:"base_url"`
	Model          string  `mapstructure:"model"`
	Temperature    float32 `mapstructure:"temperature"`
	MaxTokens      int     `mapstructure:"max_tokens"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds"`
}

type Monitoring struct {
	CSVPath string `mapstructure:"csv_path"`
}

type Config struct {
	Server     Server     `mapstructure:"server"`
	Assistant  Assistant  `mapstructure:"assistant"`
	Monitoring Monitoring `mapstructure:"monitoring"`
}

// Load reads an optional config file and applies environment overrides.
// GROQ_API_KEY is honoured directly since deploy environments set it that
// way; everything else uses the SOLAR_ATLAS_ prefix.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "5001")
	v.SetDefault("server.cors_origins", []string{
		"https://suntrackers-9171b.web.app",
		"https://suntrackers-9171b.firebaseapp.com",
		"http://localhost:5173",
	})
	v.SetDefault("assistant.temperature", 0.2)
	v.SetDefault("assistant.max_tokens", 800)
	v.SetDefault("assistant.timeout_seconds", 30)
	v.SetDefault("monitoring.csv_path", "data/monitoring_prod_energy.csv")

	v.SetEnvPrefix("SOLAR_ATLAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("assistant.api_key", "GROQ_API_KEY")
	_ = v.BindEnv("server.port", "PORT")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
