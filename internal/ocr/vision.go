package ocr

import (
	"context"
	"encoding/base64"
	"fmt"

	"google.golang.org/api/option"
	vision "google.golang.org/api/vision/v1"

	"github.com/valpere/flashsub/internal/language"
)

// textDetection is the vision feature used for subtitle overlays.
const textDetection = "TEXT_DETECTION"

// VisionEngine reads text through the Google Cloud Vision images:annotate API.
type VisionEngine struct {
	svc *vision.Service
}

// NewVisionEngine creates the vision client. Credentials come from opts
// (API key, credentials file) or the environment.
func NewVisionEngine(ctx context.Context, opts ...option.ClientOption) (*VisionEngine, error) {
	svc, err := vision.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionEngine{svc: svc}, nil
}

func (e *VisionEngine) Name() string {
	return "vision"
}

// annotateRequest builds the single-image request. Non-Latin origin languages
// get a one-element language hint list.
func annotateRequest(req Request) *vision.BatchAnnotateImagesRequest {
	air := &vision.AnnotateImageRequest{
		Image:    &vision.Image{Content: base64.StdEncoding.EncodeToString(req.Image)},
		Features: []*vision.Feature{{Type: textDetection}},
	}
	if hints := language.VisionHint(req.Language); len(hints) > 0 {
		air.ImageContext = &vision.ImageContext{LanguageHints: hints}
	}
	return &vision.BatchAnnotateImagesRequest{Requests: []*vision.AnnotateImageRequest{air}}
}

func (e *VisionEngine) Recognize(ctx context.Context, req Request) (string, error) {
	resp, err := e.svc.Images.Annotate(annotateRequest(req)).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("annotate request failed: %w", err)
	}
	if len(resp.Responses) == 0 {
		return "", ErrNoText
	}

	r := resp.Responses[0]
	if r.Error != nil && r.Error.Message != "" {
		return "", fmt.Errorf("vision error %d: %s", r.Error.Code, r.Error.Message)
	}
	if r.FullTextAnnotation == nil {
		return "", ErrNoText
	}
	return r.FullTextAnnotation.Text, nil
}
