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

	"github.com/spf13/cobra"

	"github.com/valpere/flashsub/internal/language"
	"github.com/valpere/flashsub/internal/platform"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List supported platforms and their crop regions",
	RunE: func(cmd *cobra.Command, args []string) error {
		var rows [][]string
		for _, name := range platform.Names() {
			r := platform.Crop(name)
			engine := "tesseract"
			if platform.UsesCloudOCR(name) {
				engine = "vision"
			}
			banner := ""
			if platform.HasEpisodeBanner(name) {
				banner = "yes"
			}
			rows = append(rows, []string{
				name,
				fmt.Sprintf("%.2f", r.Left),
				fmt.Sprintf("%.2f", r.Top),
				fmt.Sprintf("%.2f", r.Width),
				fmt.Sprintf("%.2f", r.Height),
				engine,
				banner,
			})
		}
		fmt.Println(renderTable(
			[]string{"PLATFORM", "LEFT", "TOP", "WIDTH", "HEIGHT", "OCR", "BANNER"},
			rows,
			[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight},
		))
		return nil
	},
}

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported language names and their codes",
	RunE: func(cmd *cobra.Command, args []string) error {
		var rows [][]string
		for _, name := range language.Names() {
			rows = append(rows, []string{name, language.GoogleCode(name), language.BCP47(name), language.TesseractCode(name)})
		}
		fmt.Println(renderTable([]string{"LANGUAGE", "TRANSLATE", "VISION", "TESSERACT"}, rows, nil))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(platformsCmd)
	rootCmd.AddCommand(languagesCmd)
}
