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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/valpere/flashsub/internal"
	"github.com/valpere/flashsub/internal/orchestrator"
)

var (
	watchInterval time.Duration
	watchJSON     bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Translate subtitles continuously until interrupted",
	Long: `Run the pipeline every --interval and print each new subtitle.

Unchanged subtitles are printed once. Enable capture.dedupe in the config to
skip OCR and translation entirely while the frame does not change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if watchInterval <= 0 {
			return fmt.Errorf("--interval must be positive")
		}
		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
		defer stop()

		p, cleanup := buildPipeline(ctx, appConfig, nil)
		defer cleanup()

		ticker := time.NewTicker(watchInterval)
		defer ticker.Stop()

		var last internal.Result
		for {
			res, err := p.Run(ctx)
			switch {
			case errors.Is(err, orchestrator.ErrAlreadyRunning):
				slog.Debug("previous run still in flight, skipping tick")
			case err != nil && ctx.Err() == nil:
				slog.Error("pipeline run failed", "error", err)
			case err == nil && res.OriginalText != "" && *res != last:
				last = *res
				if err := printResult(res, watchJSON); err != nil {
					return err
				}
			}

			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchInterval, "interval", 2*time.Second, "Time between captures")
	watchCmd.Flags().BoolVar(&watchJSON, "json", false, "Print results as JSON")
}
