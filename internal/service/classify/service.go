// Package classify turns an image of an incident into a suggested title,
// category and description using a vision model.
package classify

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/incident-desk/internal/domain"
)

// vision sends one image and a text prompt to a multimodal model and
// returns its text answer.
type vision interface {
	Describe(ctx context.Context, img domain.ImageBlob, prompt string) (string, error)
}

// Service implements image classification.
type Service struct {
	log      *slog.Logger
	vision   vision
	maxImage int64
}

// NewService creates a classification service. A nil vision disables it:
// every call then fails with domain.ErrClassification.
func NewService(logger *slog.Logger, v vision, maxImageBytes int64) *Service {
	return &Service{
		log:      logger.With("service", "classify"),
		vision:   v,
		maxImage: maxImageBytes,
	}
}

// Enabled reports whether a vision model is configured.
func (s *Service) Enabled() bool {
	return s.vision != nil
}
