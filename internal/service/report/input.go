package report

import (
	"strings"

	"github.com/heartmarshall/incident-desk/internal/domain"
	"github.com/heartmarshall/incident-desk/internal/validate"
)

// SubmitInput is an anonymous report submission.
// Type, SpecificType and ReportType carry the legacy combined field; the
// explicit Urgency and Category win when both are present.
type SubmitInput struct {
	Urgency      string
	Category     string
	Type         string
	SpecificType string
	ReportType   string
	Title        string
	Description  string
	Location     string
	Latitude     *float64
	Longitude    *float64
	Image        string // data URI
}

// resolveUrgency returns the parsed urgency, or the raw text when it does
// not parse so that draft validation reports it.
func (i SubmitInput) resolveUrgency() domain.Urgency {
	if raw := strings.TrimSpace(i.Urgency); raw != "" {
		if u, ok := domain.ParseUrgency(raw); ok {
			return u
		}
		return domain.Urgency(raw)
	}
	u, _ := domain.SplitLegacyType(i.Type)
	return u
}

// resolveCategory applies the same rule to the category, falling back to
// specificType, reportType and finally the legacy type.
func (i SubmitInput) resolveCategory() domain.Category {
	for _, raw := range []string{i.Category, i.SpecificType, i.ReportType} {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if c, ok := domain.ParseCategory(raw); ok {
			return c
		}
		return domain.Category(raw)
	}
	_, c := domain.SplitLegacyType(i.Type)
	return c
}

// TransitionInput asks to move a report to a new status.
// Version, when set, must equal the stored version.
type TransitionInput struct {
	ReportID string `json:"reportId" validate:"report_id"`
	Status   string `json:"status" validate:"required,report_status"`
	Version  *int   `json:"version" validate:"omitempty,gte=1"`
}

// Validate normalizes the status and validates the input.
func (i *TransitionInput) Validate() error {
	if s, ok := domain.ParseReportStatus(i.Status); ok {
		i.Status = string(s)
	}
	return validate.Struct(i)
}

// ListInput filters the operator report list. Empty filters match everything.
// Type is the legacy filter and may name either an urgency or a category.
type ListInput struct {
	Status   string
	Category string
	Urgency  string
	Type     string
	Limit    int
	Offset   int
}

// toFilter parses the filters and applies paging defaults.
func (i ListInput) toFilter(defaultLimit int) (domain.ReportFilter, error) {
	var (
		filter domain.ReportFilter
		errs   []domain.FieldError
	)

	if raw := strings.TrimSpace(i.Status); raw != "" {
		if s, ok := domain.ParseReportStatus(raw); ok {
			filter.Status = &s
		} else {
			errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
		}
	}

	if raw := strings.TrimSpace(i.Category); raw != "" {
		if c, ok := domain.ParseCategory(raw); ok {
			filter.Category = &c
		} else {
			errs = append(errs, domain.FieldError{Field: "category", Message: "unknown category"})
		}
	}

	if raw := strings.TrimSpace(i.Urgency); raw != "" {
		if u, ok := domain.ParseUrgency(raw); ok {
			filter.Urgency = &u
		} else {
			errs = append(errs, domain.FieldError{Field: "urgency", Message: "must be EMERGENCY or NON_EMERGENCY"})
		}
	}

	if raw := strings.TrimSpace(i.Type); raw != "" {
		u, c := domain.SplitLegacyType(raw)
		switch {
		case u != "" && filter.Urgency == nil:
			filter.Urgency = &u
		case c != "" && filter.Category == nil:
			filter.Category = &c
		case u == "" && c == "":
			errs = append(errs, domain.FieldError{Field: "type", Message: "unknown type"})
		}
	}

	switch {
	case i.Limit < 0:
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be >= 0"})
	case i.Limit == 0:
		filter.Limit = defaultLimit
	case i.Limit > MaxPageSize:
		filter.Limit = MaxPageSize
	default:
		filter.Limit = i.Limit
	}

	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	filter.Offset = i.Offset

	if len(errs) > 0 {
		return domain.ReportFilter{}, &domain.ValidationError{Errors: errs}
	}
	return filter, nil
}
