package classify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/incident-desk/internal/domain"
	"github.com/heartmarshall/incident-desk/internal/validate"
	"github.com/heartmarshall/incident-desk/pkg/imagedata"
)

// ClassifyInput carries an image as a data URI or bare base64.
type ClassifyInput struct {
	Image string `json:"image" validate:"required"`
}

// Validate validates the input.
func (i ClassifyInput) Validate() error {
	return validate.Struct(i)
}

// Classify decodes the image and asks the vision model to describe it.
// Malformed or non-image input is a validation error; everything that goes
// wrong after decoding is reported as domain.ErrClassification.
func (s *Service) Classify(ctx context.Context, input ClassifyInput) (*domain.Classification, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Decode and sniff
	img, err := imagedata.Decode(input.Image, s.maxImage)
	if err != nil {
		return nil, domain.NewValidationError("image", imagedata.Message(err))
	}

	// Step 3: Ask the model
	return s.ClassifyImage(ctx, domain.ImageBlob{Data: img.Data, ContentType: img.ContentType})
}

// ClassifyImage classifies already decoded image bytes.
func (s *Service) ClassifyImage(ctx context.Context, img domain.ImageBlob) (*domain.Classification, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("classify: vision model not configured: %w", domain.ErrClassification)
	}

	text, err := s.vision.Describe(ctx, img, Prompt)
	if err != nil {
		s.log.ErrorContext(ctx, "vision request failed",
			slog.String("content_type", img.ContentType),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("classify: %w: %w", domain.ErrClassification, err)
	}

	result := Parse(text)

	s.log.InfoContext(ctx, "image classified",
		slog.String("category", result.Category.String()),
		slog.Bool("has_title", result.Title != ""),
		slog.Bool("has_description", result.Description != ""))

	return &result, nil
}
