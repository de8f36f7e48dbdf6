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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/valpere/flashsub/internal/screen"
)

var (
	ocrTranslate bool
	ocrJSON      bool
)

var ocrCmd = &cobra.Command{
	Use:   "ocr <image>",
	Short: "Recognize subtitles in an existing screenshot",
	Long: `Run crop, OCR and cleanup on a screenshot file instead of capturing the
screen. With --translate the full pipeline runs on the image.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		capturer := screen.FileCapturer{Path: args[0]}
		p, cleanup := buildPipeline(ctx, appConfig, capturer)
		defer cleanup()

		if ocrTranslate {
			res, err := p.Run(ctx)
			if err != nil {
				return err
			}
			return printResult(res, ocrJSON)
		}

		frame, err := capturer.Capture(ctx)
		if err != nil {
			return err
		}
		cleaned, err := p.Extract(ctx, frame, p.Settings())
		if err != nil {
			return err
		}
		if cleaned == "" {
			fmt.Fprintln(os.Stderr, "No subtitle text found.")
			return nil
		}
		fmt.Print(cleaned)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ocrCmd)

	ocrCmd.Flags().BoolVar(&ocrTranslate, "translate", false, "Translate the recognized text")
	ocrCmd.Flags().BoolVar(&ocrJSON, "json", false, "Print the translated result as JSON")
}
