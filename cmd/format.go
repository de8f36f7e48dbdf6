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
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/valpere/flashsub/internal/formatter"
	"github.com/valpere/flashsub/internal/postprocess"
)

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Clean raw OCR text",
	Long: `Remove OCR noise lines, stop at the first timestamp and drop text above
episode banners. Reads the file argument, or stdin when none is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(args)
		if err != nil {
			return err
		}
		fmt.Print(formatter.Format(raw, appConfig.Platform, appConfig.OriginLanguage))
		return nil
	},
}

var (
	reconcileSource     string
	reconcileTranslated string
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Cut untranslated OCR residue from a translation",
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(reconcileSource)
		if err != nil {
			return fmt.Errorf("failed to read source file: %w", err)
		}
		translated, err := os.ReadFile(reconcileTranslated)
		if err != nil {
			return fmt.Errorf("failed to read translated file: %w", err)
		}
		fmt.Println(postprocess.Truncate(string(source), string(translated)))
		return nil
	},
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(reconcileCmd)

	reconcileCmd.Flags().StringVar(&reconcileSource, "source", "", "File with the cleaned source text")
	reconcileCmd.Flags().StringVar(&reconcileTranslated, "translated", "", "File with the translated text")
	reconcileCmd.MarkFlagRequired("source")
	reconcileCmd.MarkFlagRequired("translated")
}
