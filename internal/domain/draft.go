package domain

import (
	"math"
	"strings"
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Valid reports whether both values are finite and inside geographic ranges.
func (c Coordinates) Valid() bool {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) ||
		math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// ImageBlob is raw image content awaiting upload.
type ImageBlob struct {
	Data        []byte
	ContentType string
}

// ReportDraft is the unvalidated input of the intake pipeline. It is a value:
// every With method returns a modified copy and leaves the receiver untouched.
type ReportDraft struct {
	urgency     Urgency
	category    Category
	title       string
	description string
	location    string
	coords      *Coordinates
	image       *ImageBlob
}

// NewReportDraft returns an empty draft.
func NewReportDraft() ReportDraft {
	return ReportDraft{}
}

func (d ReportDraft) Urgency() Urgency { return d.urgency }
func (d ReportDraft) Category() Category { return d.category }
func (d ReportDraft) Title() string { return d.title }
func (d ReportDraft) Description() string { return d.description }
func (d ReportDraft) Location() string { return d.location }
func (d ReportDraft) HasCoordinates() bool { return d.coords != nil }
func (d ReportDraft) HasImage() bool { return d.image != nil }

// Coordinates returns the pair and whether it is set.
func (d ReportDraft) Coordinates() (Coordinates, bool) {
	if d.coords == nil {
		return Coordinates{}, false
	}
	return *d.coords, true
}

// Image returns the attached image and whether one is set.
func (d ReportDraft) Image() (ImageBlob, bool) {
	if d.image == nil {
		return ImageBlob{}, false
	}
	return *d.image, true
}

func (d ReportDraft) WithUrgency(u Urgency) ReportDraft {
	d.urgency = u
	return d
}

func (d ReportDraft) WithCategory(c Category) ReportDraft {
	d.category = c
	return d
}

func (d ReportDraft) WithTitle(s string) ReportDraft {
	d.title = strings.TrimSpace(s)
	return d
}

func (d ReportDraft) WithDescription(s string) ReportDraft {
	d.description = strings.TrimSpace(s)
	return d
}

func (d ReportDraft) WithLocation(s string) ReportDraft {
	d.location = strings.TrimSpace(s)
	return d
}

func (d ReportDraft) WithCoordinates(lat, lng float64) ReportDraft {
	d.coords = &Coordinates{Latitude: lat, Longitude: lng}
	return d
}

func (d ReportDraft) WithoutCoordinates() ReportDraft {
	d.coords = nil
	return d
}

func (d ReportDraft) WithImage(data []byte, contentType string) ReportDraft {
	buf := make([]byte, len(data))
	copy(buf, data)
	d.image = &ImageBlob{Data: buf, ContentType: contentType}
	return d
}

func (d ReportDraft) WithoutImage() ReportDraft {
	d.image = nil
	return d
}

// WithClassification fills title, category and description from a model
// suggestion. Fields the submitter already set are kept.
func (d ReportDraft) WithClassification(c Classification) ReportDraft {
	if d.title == "" {
		d.title = strings.TrimSpace(c.Title)
	}
	if d.category == "" {
		d.category = c.Category
	}
	if d.description == "" {
		d.description = strings.TrimSpace(c.Description)
	}
	return d
}

// WithResolvedAddress fills an empty location with the address of a
// geocoding result. Coordinates are only ever what the submitter sent.
func (d ReportDraft) WithResolvedAddress(g GeoLocation) ReportDraft {
	if d.location == "" {
		d.location = strings.TrimSpace(g.Address)
	}
	return d
}

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
	MaxLocationLength    = 500
)

// Validate checks the invariants a draft must hold before it is persisted
// and collects every violation.
func (d ReportDraft) Validate() error {
	var errs []FieldError

	if d.urgency == "" {
		errs = append(errs, FieldError{Field: "urgency", Message: "required"})
	} else if !d.urgency.IsValid() {
		errs = append(errs, FieldError{Field: "urgency", Message: "must be EMERGENCY or NON_EMERGENCY"})
	}

	if d.category == "" {
		errs = append(errs, FieldError{Field: "category", Message: "required"})
	} else if !d.category.IsValid() {
		errs = append(errs, FieldError{Field: "category", Message: "unknown category"})
	}

	if d.title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "required"})
	} else if len([]rune(d.title)) > MaxTitleLength {
		errs = append(errs, FieldError{Field: "title", Message: "max 200 characters"})
	}

	if d.description == "" {
		errs = append(errs, FieldError{Field: "description", Message: "required"})
	} else if len([]rune(d.description)) > MaxDescriptionLength {
		errs = append(errs, FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if len([]rune(d.location)) > MaxLocationLength {
		errs = append(errs, FieldError{Field: "location", Message: "max 500 characters"})
	}

	if d.coords != nil && !d.coords.Valid() {
		errs = append(errs, FieldError{Field: "coordinates", Message: "latitude must be in [-90, 90] and longitude in [-180, 180]"})
	}

	if d.image != nil && len(d.image.Data) == 0 {
		errs = append(errs, FieldError{Field: "image", Message: "empty"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
