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
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"google.golang.org/api/option"

	"github.com/valpere/flashsub/internal/config"
	"github.com/valpere/flashsub/internal/detector"
	"github.com/valpere/flashsub/internal/ocr"
	"github.com/valpere/flashsub/internal/orchestrator"
	"github.com/valpere/flashsub/internal/screen"
	"github.com/valpere/flashsub/internal/store"
	"github.com/valpere/flashsub/internal/syncx"
	"github.com/valpere/flashsub/internal/translator"
)

func googleOptions(cfg *config.Config, endpoint string) []option.ClientOption {
	var opts []option.ClientOption
	if cfg.Google.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.Google.APIKey))
	}
	if cfg.Google.Credentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Google.Credentials))
	}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	return opts
}

// buildPipeline wires the pipeline from configuration. A nil capturer uses
// the platform screen capturer. The returned cleanup closes the capturer and
// the history store.
func buildPipeline(ctx context.Context, cfg *config.Config, capturer screen.Capturer) (*orchestrator.Pipeline, func()) {
	if capturer == nil {
		capturer = screen.New(cfg.Capture.KeepFiles)
	}
	cleanup := []func(){capturer.Close}

	opts := orchestrator.Options{
		Capturer: capturer,
		LocalOCR: ocr.NewTesseractEngine(cfg.OCR.TessdataPrefix),
		Translator: translator.NewGoogleService(translator.ServiceConfig{
			APIKey:      cfg.Google.APIKey,
			Credentials: cfg.Google.Credentials,
			Endpoint:    cfg.Google.TranslateEndpoint,
			Timeout:     cfg.Google.Timeout,
		}),
		Permit: syncx.NewPermit(),
	}

	if cfg.LockFile != "" {
		opts.Permit = syncx.NewFilePermit(cfg.LockFile)
	}

	if cfg.OCR.Cloud {
		vision, err := ocr.NewVisionEngine(ctx, googleOptions(cfg, cfg.Google.VisionEndpoint)...)
		if err != nil {
			slog.Warn("cloud OCR unavailable, using local engine only", "error", err)
		} else {
			opts.CloudOCR = vision
		}
	}

	if cfg.Detect.Fallback {
		opts.Detector = detector.New()
	}

	if cfg.Capture.Dedupe {
		opts.Deduper = screen.NewDeduper()
	}

	if cfg.History.Enabled {
		db, err := store.New(cfg.History.DBPath)
		if err != nil {
			slog.Warn("history disabled", "path", cfg.History.DBPath, "error", err)
		} else {
			opts.History = db
			cleanup = append(cleanup, func() { db.Close() })
		}
	}

	p := orchestrator.New(cfg.Settings, opts)
	return p, func() {
		for i := len(cleanup) - 1; i >= 0; i-- {
			cleanup[i]()
		}
	}
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// snippet flattens s to one line of at most n runes for table cells.
func snippet(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
