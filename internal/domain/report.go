package domain

import (
	"time"

	"github.com/google/uuid"
)

// Report is a persisted incident record.
// ID is internal to the store; every external lookup goes through ReportID.
type Report struct {
	ID               uuid.UUID
	ReportID         string
	Urgency          Urgency
	Category         Category
	Title            string
	Description      string
	Location         *string
	Latitude         *float64
	Longitude        *float64
	ImageKey         *string
	ImageContentType *string
	Status           ReportStatus
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// HasImage reports whether a blob is attached.
func (r *Report) HasImage() bool {
	return r.ImageKey != nil && *r.ImageKey != ""
}

// HasCoordinates reports whether both coordinates are set.
func (r *Report) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// ReportFilter selects reports for the operator list. Nil fields match everything.
type ReportFilter struct {
	Status   *ReportStatus
	Category *Category
	Urgency  *Urgency
	Limit    int
	Offset   int
}

// StatusChange is one entry of a report's triage history.
type StatusChange struct {
	ID         uuid.UUID
	ReportID   string
	FromStatus ReportStatus
	ToStatus   ReportStatus
	ActorID    uuid.UUID
	CreatedAt  time.Time
}

// Classification is the structured suggestion produced from an image.
// Empty fields mean the model did not provide them.
type Classification struct {
	Title       string
	Category    Category
	Description string
}

// GeoLocation is a resolved point with its formatted address.
type GeoLocation struct {
	Latitude  float64
	Longitude float64
	Address   string
}

// ReportSummary is the operator list projection of a Report.
// It never carries the internal ID or the blob key.
type ReportSummary struct {
	ReportID    string
	Urgency     Urgency
	Category    Category
	Title       string
	Description string
	Location    *string
	Latitude    *float64
	Longitude   *float64
	HasImage    bool
	Status      ReportStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Summary projects the report onto the list whitelist.
func (r *Report) Summary() ReportSummary {
	return ReportSummary{
		ReportID:    r.ReportID,
		Urgency:     r.Urgency,
		Category:    r.Category,
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		HasImage:    r.HasImage(),
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
