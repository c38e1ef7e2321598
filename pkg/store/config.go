package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the base directory the day files live under. It is
// resolved once at startup and injected, never read from the environment at
// call sites.
type Config interface {
	BasePath() string
}

// LoadConfig resolves the data directory from a .punch config file or the
// PUNCH_PATH environment variable, defaulting to ~/.punch.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.punch.db")
	viper.SetConfigName(".punch") // .yaml is implicit
	viper.SetEnvPrefix("PUNCH")
	viper.AutomaticEnv()

	if override := os.Getenv("PUNCH_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("error expanding data path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
