package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/dvsdigi/dvsapp/pkg/sdk/geo"
)

// Settings are the file/env-sourced values. Precedence, lowest to highest:
// built-in defaults, config file (~/.dvsapp/dvsapp.yaml or ./dvsapp.yaml),
// DVSAPP_* environment variables, then command-line flags applied by root.
type Settings struct {
	ServerURL string
	Theme     string
	Location  geo.Position
}

// Load reads settings via viper. A .env file in the working directory is
// loaded first so DVSAPP_* variables defined there behave like real
// environment variables. A missing config file is not an error.
func Load() (*Settings, error) {
	godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("DVSAPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server_url", "http://localhost:4000")
	v.SetDefault("theme", "dark")
	v.SetDefault("location.latitude", 0.0)
	v.SetDefault("location.longitude", 0.0)
	v.SetDefault("location.accuracy", 50.0)

	v.SetConfigName("dvsapp")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".dvsapp"))
	}
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, err
		}
	}

	return &Settings{
		ServerURL: v.GetString("server_url"),
		Theme:     v.GetString("theme"),
		Location: geo.Position{
			Latitude:  v.GetFloat64("location.latitude"),
			Longitude: v.GetFloat64("location.longitude"),
			Accuracy:  v.GetFloat64("location.accuracy"),
		},
	}, nil
}
