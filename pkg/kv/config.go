package kv

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config provides the storage base path and the hosted-variant settings.
type Config interface {
	BasePath() string
	DSN() string
	User() string
}

// LoadConfig discovers a .diary config file (CWD or $DIARY_CONFIG_PATH) and
// merges DIARY_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.diary.db")
	viper.SetConfigName(".diary") // .yaml is implicit
	viper.SetEnvPrefix("DIARY")
	viper.AutomaticEnv()

	if override := os.Getenv("DIARY_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("kv: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("kv: expand path: %w", err)
	}

	return &fileConfig{
		Path:     path,
		Database: viper.GetString("dsn"),
		UserID:   viper.GetString("user"),
	}, nil
}

type fileConfig struct {
	Path     string `json:"path"`
	Database string `json:"dsn"`
	UserID   string `json:"user"`
}

func (f *fileConfig) BasePath() string { return f.Path }
func (f *fileConfig) DSN() string      { return f.Database }
func (f *fileConfig) User() string     { return f.UserID }
