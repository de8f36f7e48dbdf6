// Package config loads flashsub settings from a YAML file, FLASHSUB_*
// environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/valpere/flashsub/internal"
	apperrors "github.com/valpere/flashsub/internal/errors"
	"github.com/valpere/flashsub/internal/language"
)

const (
	configName = "flashsub"
	envPrefix  = "FLASHSUB"
)

// Google holds credentials and endpoint overrides for Cloud Translation and
// Cloud Vision. Empty endpoints use the production services.
type Google struct {
	APIKey            string        `mapstructure:"api_key"`
	Credentials       string        `mapstructure:"credentials"`
	TranslateEndpoint string        `mapstructure:"translate_endpoint"`
	VisionEndpoint    string        `mapstructure:"vision_endpoint"`
	Timeout           time.Duration `mapstructure:"timeout"`
}

type OCR struct {
	// Cloud allows routing to Cloud Vision. False forces the local engine.
	Cloud          bool   `mapstructure:"cloud"`
	TessdataPrefix string `mapstructure:"tessdata_prefix"`
}

type Detect struct {
	Fallback bool `mapstructure:"fallback"`
}

type Capture struct {
	Dedupe    bool `mapstructure:"dedupe"`
	KeepFiles bool `mapstructure:"keep_files"`
}

type History struct {
	Enabled bool   `mapstructure:"enabled"`
	DBPath  string `mapstructure:"db_path"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	internal.Settings `mapstructure:",squash"`

	Google   Google  `mapstructure:"google"`
	OCR      OCR     `mapstructure:"ocr"`
	Detect   Detect  `mapstructure:"detect"`
	Capture  Capture `mapstructure:"capture"`
	History  History `mapstructure:"history"`
	LockFile string  `mapstructure:"lock_file"`
	Log      Log     `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("origin_language", language.Automatic)
	v.SetDefault("target_language", "French")
	v.SetDefault("platform", "Netflix")

	v.SetDefault("google.api_key", "")
	v.SetDefault("google.credentials", "")
	v.SetDefault("google.translate_endpoint", "")
	v.SetDefault("google.vision_endpoint", "")
	v.SetDefault("google.timeout", 15*time.Second)

	v.SetDefault("ocr.cloud", true)
	v.SetDefault("ocr.tessdata_prefix", "")
	v.SetDefault("detect.fallback", true)
	v.SetDefault("capture.dedupe", false)
	v.SetDefault("capture.keep_files", false)
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.db_path", filepath.Join("data", "flashsub.db"))
	v.SetDefault("lock_file", filepath.Join(os.TempDir(), "flashsub.lock"))
	v.SetDefault("log.level", "info")
}

// Load reads configuration. An empty path searches the working directory and
// $HOME/.config/flashsub; a missing file there is not an error. It returns
// the file actually used, empty when none was found.
func Load(path string) (*Config, string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, "", fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to decode config: %w", err)
	}

	return &cfg, v.ConfigFileUsed(), nil
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if !language.Known(c.TargetLanguage) {
		return apperrors.Newf(apperrors.CodeConfigInvalid, "unknown target language %q", c.TargetLanguage)
	}
	if !language.IsAutomatic(c.OriginLanguage) && !language.Known(c.OriginLanguage) {
		return apperrors.Newf(apperrors.CodeConfigInvalid, "unknown origin language %q", c.OriginLanguage)
	}
	if !logLevels[strings.ToLower(c.Log.Level)] {
		return apperrors.Newf(apperrors.CodeConfigInvalid, "log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	if c.History.Enabled && c.History.DBPath == "" {
		return apperrors.New(apperrors.CodeConfigInvalid, "history.db_path must be set when history is enabled")
	}
	if c.Google.Timeout < 0 {
		return apperrors.New(apperrors.CodeConfigInvalid, "google.timeout must not be negative")
	}
	return nil
}
