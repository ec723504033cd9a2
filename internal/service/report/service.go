// Package report implements the incident intake pipeline, the triage
// workflow and the report queries.
package report

import (
	"context"
	"io"
	"log/slog"

	"github.com/heartmarshall/incident-desk/internal/config"
	"github.com/heartmarshall/incident-desk/internal/domain"
)

// MaxPageSize caps List results.
const MaxPageSize = 200

// reportRepo defines the report repository interface needed by report service.
type reportRepo interface {
	Create(ctx context.Context, report *domain.Report) (*domain.Report, error)
	GetByReportID(ctx context.Context, reportID string) (*domain.Report, error)
	List(ctx context.Context, filter domain.ReportFilter) ([]*domain.Report, error)
	Count(ctx context.Context, filter domain.ReportFilter) (int, error)
	UpdateStatus(ctx context.Context, reportID string, expectedVersion int, status domain.ReportStatus) (*domain.Report, error)
	AddStatusChange(ctx context.Context, change *domain.StatusChange) error
	ListStatusChanges(ctx context.Context, reportID string) ([]*domain.StatusChange, error)
}

// txManager defines the transaction manager interface needed by report service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// blobStore keeps uploaded images.
type blobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// idGenerator issues external report identifiers.
type idGenerator interface {
	Generate() (string, error)
}

// imageClassifier suggests title, category and description for an image.
type imageClassifier interface {
	Enabled() bool
	ClassifyImage(ctx context.Context, img domain.ImageBlob) (*domain.Classification, error)
}

// geocoder resolves addresses and coordinates.
type geocoder interface {
	Enabled() bool
	Reverse(ctx context.Context, lat, lng float64) (*domain.GeoLocation, error)
}

// Service implements report operations.
type Service struct {
	log        *slog.Logger
	reports    reportRepo
	tx         txManager
	blobs      blobStore
	ids        idGenerator
	classifier imageClassifier
	geo        geocoder
	cfg        config.IntakeConfig
	maxImage   int64
}

// NewService creates a new report service instance.
func NewService(
	logger *slog.Logger,
	reports reportRepo,
	tx txManager,
	blobs blobStore,
	ids idGenerator,
	classifier imageClassifier,
	geo geocoder,
	cfg config.IntakeConfig,
	maxImageBytes int64,
) *Service {
	return &Service{
		log:        logger.With("service", "report"),
		reports:    reports,
		tx:         tx,
		blobs:      blobs,
		ids:        ids,
		classifier: classifier,
		geo:        geo,
		cfg:        cfg,
		maxImage:   maxImageBytes,
	}
}
