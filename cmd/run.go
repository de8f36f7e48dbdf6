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
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/valpere/flashsub/internal"
	"github.com/valpere/flashsub/internal/orchestrator"
)

var runJSON bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Capture the screen once and translate the subtitle",
	Long: `Capture the primary display, crop the subtitle region of the selected
platform, recognize and clean the text, then translate it.

The notification body is printed to stdout; use --json for the full result.
Only one run may be in flight at a time, across processes as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		p, cleanup := buildPipeline(ctx, appConfig, nil)
		defer cleanup()

		res, err := p.Run(ctx)
		if errors.Is(err, orchestrator.ErrAlreadyRunning) {
			fmt.Fprintln(os.Stderr, "flashsub is already running")
			return err
		}
		if err != nil {
			return err
		}

		return printResult(res, runJSON)
	},
}

func printResult(res *internal.Result, asJSON bool) error {
	if asJSON {
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}
	if res.OriginalText == "" {
		fmt.Fprintln(os.Stderr, "No subtitle text found.")
		return nil
	}
	fmt.Println(res.Notification())
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runJSON, "json", false, "Print the result as JSON")
}
