package domain

import (
	"strings"
	"unicode"
)

// Urgency is the coarse classification of a report.
type Urgency string

const (
	UrgencyEmergency    Urgency = "EMERGENCY"
	UrgencyNonEmergency Urgency = "NON_EMERGENCY"
)

func (u Urgency) String() string { return string(u) }

func (u Urgency) IsValid() bool {
	switch u {
	case UrgencyEmergency, UrgencyNonEmergency:
		return true
	}
	return false
}

// ParseUrgency accepts the enum name in any case, with spaces or hyphens
// in place of underscores. Returns false for anything else.
func ParseUrgency(s string) (Urgency, bool) {
	switch foldKey(s) {
	case "EMERGENCY":
		return UrgencyEmergency, true
	case "NONEMERGENCY":
		return UrgencyNonEmergency, true
	}
	return "", false
}

// Category is the fine-grained incident kind.
type Category string

const (
	CategoryTheft            Category = "THEFT"
	CategoryFireOutbreak     Category = "FIRE_OUTBREAK"
	CategoryMedicalEmergency Category = "MEDICAL_EMERGENCY"
	CategoryNaturalDisaster  Category = "NATURAL_DISASTER"
	CategoryViolence         Category = "VIOLENCE"
	CategoryOther            Category = "OTHER"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryTheft,
	CategoryFireOutbreak,
	CategoryMedicalEmergency,
	CategoryNaturalDisaster,
	CategoryViolence,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryTheft:            "Theft",
	CategoryFireOutbreak:     "Fire Outbreak",
	CategoryMedicalEmergency: "Medical Emergency",
	CategoryNaturalDisaster:  "Natural Disaster",
	CategoryViolence:         "Violence",
	CategoryOther:            "Other",
}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the human-readable name, e.g. "Fire Outbreak".
func (c Category) Label() string {
	return categoryLabels[c]
}

// ParseCategory matches enum names and display labels case-insensitively:
// "FIRE_OUTBREAK", "Fire Outbreak", "fire-outbreak" and "FireOutbreak" are equal.
func ParseCategory(s string) (Category, bool) {
	key := foldKey(s)
	if key == "" {
		return "", false
	}
	for _, c := range Categories {
		if foldKey(string(c)) == key {
			return c, true
		}
	}
	return "", false
}

// CoerceCategory maps free text into the enumeration. Empty input stays empty,
// unknown text becomes OTHER.
func CoerceCategory(s string) Category {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	if c, ok := ParseCategory(s); ok {
		return c
	}
	return CategoryOther
}

// SplitLegacyType maps the old combined "type" value onto the two
// orthogonal fields. Exactly one of the results is non-empty for a known
// value; both are empty otherwise.
func SplitLegacyType(s string) (Urgency, Category) {
	if u, ok := ParseUrgency(s); ok {
		return u, ""
	}
	if c, ok := ParseCategory(s); ok {
		return "", c
	}
	return "", ""
}

// ReportStatus is the triage state of a report.
type ReportStatus string

const (
	ReportStatusPending    ReportStatus = "PENDING"
	ReportStatusInProgress ReportStatus = "IN_PROGRESS"
	ReportStatusResolved   ReportStatus = "RESOLVED"
	ReportStatusDismissed  ReportStatus = "DISMISSED"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportStatusPending, ReportStatusInProgress, ReportStatusResolved, ReportStatusDismissed:
		return true
	}
	return false
}

// ParseReportStatus accepts the enum name in any case.
func ParseReportStatus(s string) (ReportStatus, bool) {
	switch foldKey(s) {
	case "PENDING":
		return ReportStatusPending, true
	case "INPROGRESS":
		return ReportStatusInProgress, true
	case "RESOLVED":
		return ReportStatusResolved, true
	case "DISMISSED":
		return ReportStatusDismissed, true
	}
	return "", false
}

// UserRole represents the authorization level of an operator account.
type UserRole string

const (
	UserRoleOperator UserRole = "operator"
	UserRoleAdmin    UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleOperator, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// foldKey upper-cases s and drops everything except letters and digits.
func foldKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}
