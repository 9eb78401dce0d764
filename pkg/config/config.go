package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/akeil/notion/internal/fs"
	"github.com/akeil/notion/internal/logging"
	"github.com/akeil/notion/pkg/api"
)

// EnvPrefix is the prefix for environment overrides, e.g. NOTION_API_TOKEN.
const EnvPrefix = "NOTION"

// Settings for the command line tool.
type Settings struct {
	APIToken   string `toml:"api_token" envconfig:"API_TOKEN" validate:"required"`
	BaseURL    string `toml:"base_url" envconfig:"BASE_URL" validate:"omitempty,url"`
	APIVersion string `toml:"api_version" envconfig:"API_VERSION"`
	LogLevel   string `toml:"log_level" envconfig:"LOG_LEVEL" validate:"omitempty,oneof=debug info warning warn error none"`
}

// DefaultPath is ~/.config/notion-cli/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "notion-cli", "config.toml"), nil
}

// Load reads settings from the file at path and applies overrides from
// a .env file in the working directory and from the environment.
//
// If the file does not exist, an empty one is created.
func Load(path string) (*Settings, error) {
	created, err := fs.EnsureFile(path)
	if err != nil {
		return nil, fmt.Errorf("prepare config file: %w", err)
	}
	if created {
		logging.Warning("Created empty config file at %v", path)
	}

	var s Settings
	_, err = toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("read config file %v: %w", path, err)
	}

	err = godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	err = envconfig.Process(EnvPrefix, &s)
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	err = s.Validate()
	if err != nil {
		return nil, err
	}
	return &s, nil
}

var validate = validator.New()

// Validate checks that a token is present and the other settings are
// well formed.
func (s Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) != 0 {
		fe := errs[0]
		if fe.Field() == "APIToken" {
			return fmt.Errorf("no API token, set api_token in the config file or %v_API_TOKEN", EnvPrefix)
		}
		return fmt.Errorf("invalid setting %v: failed %v", fe.Field(), fe.Tag())
	}
	return err
}

// ClientConfig returns the configuration for an API client.
func (s Settings) ClientConfig() api.Config {
	return api.Config{
		Token:   s.APIToken,
		BaseURL: s.BaseURL,
		Version: s.APIVersion,
	}
}
