package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies every tunable the client reads at startup.
type Config interface {
	BasePath() string
	APIBase() string
	ImageHost() string
	ImageClientKey() string
	Capacity() int
	LibraryDir() string
	CaptureCommand() string
}

const (
	defaultAPIBase   = "https://sampleapis.assimilate.be/coffee"
	defaultImageHost = "https://api.imgur.com/3/image"
	defaultCapacity  = 3
)

// LoadConfig reads a .brew config file (yaml implicit) from
// BREW_CONFIG_PATH or the working directory, with BREW_* environment
// overrides for every key.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.brew")
	viper.SetDefault("api", defaultAPIBase)
	viper.SetDefault("imagehost", defaultImageHost)
	viper.SetDefault("imagekey", "")
	viper.SetDefault("capacity", defaultCapacity)
	viper.SetDefault("library", "~/Pictures")
	viper.SetDefault("capture", "")
	viper.SetConfigName(".brew")
	viper.SetEnvPrefix("BREW")
	viper.AutomaticEnv()

	if override := os.Getenv("BREW_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("expanding storage path: %w", err)
	}
	library, err := homedir.Expand(viper.GetString("library"))
	if err != nil {
		return nil, fmt.Errorf("expanding library path: %w", err)
	}

	capacity := viper.GetInt("capacity")
	if capacity <= 0 {
		capacity = defaultCapacity
	}

	return &fileConfig{
		Path:    path,
		API:     viper.GetString("api"),
		Host:    viper.GetString("imagehost"),
		Key:     viper.GetString("imagekey"),
		Cap:     capacity,
		Library: library,
		Capture: viper.GetString("capture"),
	}, nil
}

type fileConfig struct {
	Path    string `json:"path"`
	API     string `json:"api"`
	Host    string `json:"imagehost"`
	Key     string `json:"imagekey"`
	Cap     int    `json:"capacity"`
	Library string `json:"library"`
	Capture string `json:"capture"`
}

func (f *fileConfig) BasePath() string       { return f.Path }
func (f *fileConfig) APIBase() string        { return f.API }
func (f *fileConfig) ImageHost() string      { return f.Host }
func (f *fileConfig) ImageClientKey() string { return f.Key }
func (f *fileConfig) Capacity() int          { return f.Cap }
func (f *fileConfig) LibraryDir() string     { return f.Library }
func (f *fileConfig) CaptureCommand() string { return f.Capture }
