package vision

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	vision "google.golang.org/api/vision/v1"
	"google.golang.org/api/option"
)

// ErrNoTextDetected is returned when the provider answers successfully but
// finds zero text regions in the image. Terminal for that image; the caller
// asks the user for a clearer photo instead of retrying.
var ErrNoTextDetected = errors.New("no text detected in image")

type ItfVision interface {
	DetectText(ctx context.Context, image []byte) (string, error)
}

type visionClient struct {
	apiKey  string
	service *vision.Service
}

func New() (ItfVision, error) {
	apiKey := os.Getenv("GOOGLE_VISION_API_KEY")
	if apiKey == "" {
		return nil, errors.New("google vision API key is required")
	}

	service, err := vision.NewService(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create vision service: %w", err)
	}

	return &visionClient{
		apiKey:  apiKey,
		service: service,
	}, nil
}

// DetectText runs one text-detection call against the image. Every call
// re-executes OCR; results are not cached.
func (v *visionClient) DetectText(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", errors.New("image data is empty")
	}

	req := &vision.BatchAnnotateImagesRequest{
		Requests: []*vision.AnnotateImageRequest{
			{
				Image: &vision.Image{
					Content: base64.StdEncoding.EncodeToString(image),
				},
				Features: []*vision.Feature{
					{Type: "TEXT_DETECTION"},
				},
			},
		},
	}

	resp, err := v.service.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("vision annotate call failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return "", ErrNoTextDetected
	}

	annotated := resp.Responses[0]
	if annotated.Error != nil {
		return "", fmt.Errorf("vision provider error: %s", annotated.Error.Message)
	}

	// The first annotation carries the full-image text blob; the rest are
	// per-region fragments.
	if len(annotated.TextAnnotations) == 0 || annotated.TextAnnotations[0].Description == "" {
		return "", ErrNoTextDetected
	}

	return annotated.TextAnnotations[0].Description, nil
}
