/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/valpere/flashsub/internal/config"
)

var version = "0.1.0"

var (
	configFile     string
	logLevel       string
	originLanguage string
	targetLanguage string
	platformName   string

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "flashsub",
	Short: "Screen subtitle OCR and translation",
	Long: `flashsub captures the subtitle region of the screen, recognizes the text,
strips OCR noise and translates it.

Recognition uses Google Cloud Vision for full-frame streaming platforms and
Tesseract everywhere else, with Tesseract as the fallback when the cloud fails.

Use "flashsub run --help" for a single translation.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func loadConfig(cmd *cobra.Command, args []string) error {
	cfg, used, err := config.Load(configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("origin") {
		cfg.OriginLanguage = originLanguage
	}
	if flags.Changed("target") {
		cfg.TargetLanguage = targetLanguage
	}
	if flags.Changed("platform") {
		cfg.Platform = platformName
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	setupLogging(cfg.Log.Level)
	if used != "" {
		slog.Debug("config loaded", "path", used)
	}

	appConfig = cfg
	return nil
}

// setupLogging installs a text handler for terminals and a JSON handler
// when stderr is redirected.
func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	fd := os.Stderr.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Config file (default ./flashsub.yaml or ~/.config/flashsub/flashsub.yaml)")
	pf.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVarP(&originLanguage, "origin", "s", "Automatic", "Origin language display name (Automatic to detect)")
	pf.StringVarP(&targetLanguage, "target", "t", "French", "Target language display name")
	pf.StringVarP(&platformName, "platform", "p", "Netflix", "Streaming platform, selects the crop region and OCR engine")

	rootCmd.SetVersionTemplate(fmt.Sprintf("flashsub %s\n", version))
}
