// Package orchestrator runs the subtitle pipeline: capture, crop, OCR,
// format, translate and reconcile.
package orchestrator

import (
	"context"
	"image"
	"log/slog"
	"strings"
	"time"

	"github.com/valpere/flashsub/internal"
	apperrors "github.com/valpere/flashsub/internal/errors"
	"github.com/valpere/flashsub/internal/formatter"
	"github.com/valpere/flashsub/internal/language"
	"github.com/valpere/flashsub/internal/ocr"
	"github.com/valpere/flashsub/internal/platform"
	"github.com/valpere/flashsub/internal/postprocess"
	"github.com/valpere/flashsub/internal/screen"
	"github.com/valpere/flashsub/internal/syncx"
	"github.com/valpere/flashsub/internal/translator"
)

// ErrAlreadyRunning is returned by Run when another run holds the permit.
var ErrAlreadyRunning = apperrors.New(apperrors.CodeAlreadyRunning, "pipeline already running")

// LanguageDetector guesses the ISO 639-1 code of text.
type LanguageDetector interface {
	DetectCode(text string) (string, bool)
}

// Recorder persists successful results.
type Recorder interface {
	Record(ctx context.Context, res internal.Result, platform string) error
}

// Options wires the pipeline's collaborators. Capturer, LocalOCR and
// Translator are required; the rest may be nil.
type Options struct {
	Capturer   screen.Capturer
	LocalOCR   ocr.Engine
	CloudOCR   ocr.Engine
	Translator translator.TranslationService
	Detector   LanguageDetector
	History    Recorder
	Deduper    *screen.Deduper
	Permit     *syncx.Permit
}

type Pipeline struct {
	settings   *syncx.Guard[internal.Settings]
	permit     *syncx.Permit
	capturer   screen.Capturer
	local      ocr.Engine
	cloud      ocr.Engine
	translator translator.TranslationService
	detector   LanguageDetector
	history    Recorder
	deduper    *screen.Deduper

	// last is only touched while the permit is held.
	last *internal.Result
}

func New(initial internal.Settings, opts Options) *Pipeline {
	permit := opts.Permit
	if permit == nil {
		permit = syncx.NewPermit()
	}
	return &Pipeline{
		settings:   syncx.NewGuard(initial),
		permit:     permit,
		capturer:   opts.Capturer,
		local:      opts.LocalOCR,
		cloud:      opts.CloudOCR,
		translator: opts.Translator,
		detector:   opts.Detector,
		history:    opts.History,
		deduper:    opts.Deduper,
	}
}

// Settings returns a copy of the current settings.
func (p *Pipeline) Settings() internal.Settings {
	return p.settings.Snapshot()
}

// UpdateSettings applies fn to the settings. Runs already in flight keep the
// snapshot they started with.
func (p *Pipeline) UpdateSettings(fn func(*internal.Settings)) {
	p.settings.Update(fn)
}

// Busy reports whether a run is in flight.
func (p *Pipeline) Busy() bool {
	return p.permit.Busy()
}

// Run executes one pipeline invocation. It never blocks on another run: if
// one is in flight it returns ErrAlreadyRunning immediately.
func (p *Pipeline) Run(ctx context.Context) (*internal.Result, error) {
	release, ok := p.permit.TryAcquire()
	if !ok {
		return nil, ErrAlreadyRunning
	}
	defer release()

	s := p.settings.Snapshot()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	start := time.Now()
	slog.Debug("pipeline started", "platform", s.Platform, "origin", s.OriginLanguage, "target", s.TargetLanguage)

	frame, err := p.capturer.Capture(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCaptureFailed, "screen capture failed")
	}

	img, err := cropFrame(frame, s.Platform)
	if err != nil {
		return nil, err
	}

	if p.deduper != nil {
		if p.deduper.Seen(img) && p.last != nil {
			slog.Debug("frame unchanged, reusing previous result")
			res := *p.last
			return &res, nil
		}
		// The reference frame moved; the previous result no longer matches it.
		p.last = nil
	}

	raw, err := p.recognize(ctx, img, s)
	if err != nil {
		return nil, err
	}

	res, err := p.translate(ctx, formatter.Format(raw, s.Platform, s.OriginLanguage), s)
	if err != nil {
		return nil, err
	}

	// Empty results are remembered too so a repeated blank frame stays blank.
	p.last = res
	if res.OriginalText != "" {
		if p.history != nil {
			if err := p.history.Record(ctx, *res, s.Platform); err != nil {
				slog.Warn("failed to save subtitle history", "error", err)
			}
		}
	}

	slog.Debug("pipeline finished", "duration", time.Since(start), "detected", res.DetectedSourceLanguage)
	out := *res
	return &out, nil
}

// Extract runs the OCR half of the pipeline on an already captured frame and
// returns the cleaned text. It does not take the permit.
func (p *Pipeline) Extract(ctx context.Context, frame []byte, s internal.Settings) (string, error) {
	img, err := cropFrame(frame, s.Platform)
	if err != nil {
		return "", err
	}
	raw, err := p.recognize(ctx, img, s)
	if err != nil {
		return "", err
	}
	return formatter.Format(raw, s.Platform, s.OriginLanguage), nil
}

func cropFrame(frame []byte, platformName string) (image.Image, error) {
	img, err := screen.Decode(frame)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeCaptureFailed, "failed to decode screenshot")
	}
	return screen.Crop(img, platform.Crop(platformName)), nil
}

// engineFor routes full-frame streaming platforms to the cloud engine with a
// local fallback. Everything else goes straight to the local engine.
func (p *Pipeline) engineFor(platformName string) ocr.Engine {
	if p.cloud != nil && platform.UsesCloudOCR(platformName) {
		return &ocr.Chain{Primary: p.cloud, Fallback: p.local}
	}
	return p.local
}

func (p *Pipeline) recognize(ctx context.Context, img image.Image, s internal.Settings) (string, error) {
	data, err := screen.EncodePNG(img)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeCaptureFailed, "failed to encode crop")
	}

	engine := p.engineFor(s.Platform)
	slog.Debug("running OCR", "engine", engine.Name(), "bytes", len(data))

	text, err := engine.Recognize(ctx, ocr.Request{Image: data, Language: s.OriginLanguage})
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeOCRFailed, "text recognition failed").
			WithMetadata("engine", engine.Name())
	}
	return text, nil
}

func (p *Pipeline) translate(ctx context.Context, cleaned string, s internal.Settings) (*internal.Result, error) {
	// Nothing to translate; the service is not called for empty text.
	if strings.TrimSpace(cleaned) == "" {
		slog.Debug("no subtitle text recognized")
		return &internal.Result{}, nil
	}

	req := translator.TranslateRequest{
		Text:       cleaned,
		TargetLang: language.GoogleCode(s.TargetLanguage),
	}
	if !language.IsAutomatic(s.OriginLanguage) {
		req.SourceLang = language.GoogleCode(s.OriginLanguage)
	}

	tr, err := p.translator.Translate(ctx, req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeTranslationFailed, "translation failed").
			WithMetadata("service", p.translator.Name())
	}

	decoded, err := postprocess.Decode(tr.TranslatedText)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDecodeFailed, "failed to decode translation")
	}

	detected := tr.DetectedSourceLanguage
	if detected == "" && language.IsAutomatic(s.OriginLanguage) && p.detector != nil {
		if code, ok := p.detector.DetectCode(cleaned); ok {
			slog.Debug("detected language locally", "language", code)
			detected = code
		}
	}

	var translated string
	if detected != "" && strings.EqualFold(detected, req.TargetLang) {
		translated = strings.TrimSpace(decoded)
	} else {
		translated = postprocess.Truncate(cleaned, decoded)
	}

	return &internal.Result{
		OriginalText:           cleaned,
		TranslatedText:         translated,
		DetectedSourceLanguage: detected,
	}, nil
}
