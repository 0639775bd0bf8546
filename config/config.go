package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

type Config struct {
	Mode   string `mapstructure:"mode"`
	Server struct {
		HTTPPort    string        `mapstructure:"HTTPPort"`
		MetricsPort string        `mapstructure:"metricsPort"`
		Timeout     time.Duration `mapstructure:"HTTPTimeout"`
	} `mapstructure:"server"`
	LLM struct {
		Provider string `mapstructure:"provider"`
		Model    string `mapstructure:"model"`
		BaseURL  string `mapstructure:"baseURL"`
	} `mapstructure:"llm"`
	Images struct {
		RetryAttempts  int           `mapstructure:"retryAttempts"`
		RetryDelay     time.Duration `mapstructure:"retryDelay"`
		RequestTimeout time.Duration `mapstructure:"requestTimeout"`
	} `mapstructure:"images"`
	PDF struct {
		FontPath string `mapstructure:"fontPath"`
	} `mapstructure:"pdf"`
}

// InitConfig loads config.yml from the usual locations, falling back to the
// embedded copy so the binary runs standalone. API keys never live here; they
// come from the environment.
func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %s", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %s", err)
	}
	return config, nil
}
