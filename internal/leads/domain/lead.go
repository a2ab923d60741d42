// Package domain defines the canonical Lead record and its field catalog.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the funnel position of a lead. The funnel is ordered for
// presentation, but no transition guard is enforced: any status may follow
// any other, including reopening a closed lead.
type Status string

const (
	StatusNew         Status = "new"
	StatusContacted   Status = "contacted"
	StatusQualified   Status = "qualified"
	StatusProposal    Status = "proposal"
	StatusNegotiation Status = "negotiation"
	StatusClosedWon   Status = "closed_won"
	StatusClosedLost  Status = "closed_lost"
)

// AllStatuses lists the funnel in order.
func AllStatuses() []Status {
	return []Status{
		StatusNew,
		StatusContacted,
		StatusQualified,
		StatusProposal,
		StatusNegotiation,
		StatusClosedWon,
		StatusClosedLost,
	}
}

// ValidStatus reports whether s is a member of the funnel enum.
func ValidStatus(s string) bool {
	for _, known := range AllStatuses() {
		if Status(s) == known {
			return true
		}
	}
	return false
}

// Source is the originating channel of a lead.
type Source string

const (
	SourceManual            Source = "manual"
	SourceCSVImport         Source = "csv_import"
	SourceSpreadsheetImport Source = "spreadsheet_import"
	SourceProviderForm      Source = "provider_form"
	SourceOther             Source = "other"
)

// AllSources lists the provenance enum.
func AllSources() []Source {
	return []Source{
		SourceManual,
		SourceCSVImport,
		SourceSpreadsheetImport,
		SourceProviderForm,
		SourceOther,
	}
}

// ValidSource reports whether s is a member of the provenance enum.
func ValidSource(s string) bool {
	for _, known := range AllSources() {
		if Source(s) == known {
			return true
		}
	}
	return false
}

// Lead is the canonical record every source is normalized into.
//
// Contact name, surname, email and mobile are the only fields subject to
// import-time validation; everything else is optional free text or numeric.
// Unrecognized source columns survive in Extra (or ProviderData for
// provider-form leads) rather than being dropped.
type Lead struct {
	ID uuid.UUID

	Source    Source
	Status    Status
	CreatedBy uuid.UUID

	AssignedTo *uuid.UUID

	// Contact attributes.
	Name            string
	Surname         string
	EmailAddress    string
	MobileNumber    string
	TelephoneNumber string
	WhatsAppNumber  string

	// Company attributes.
	CompanyTradingName    string
	CompanyRegisteredName string
	CompanyAddress        string
	Industry              string
	EmployeeCount         *int
	CompanySize           string
	AnnualTurnover        string

	// Provider-form attributes, present only when Source is provider_form.
	ProviderData map[string]string
	AdID         *string
	CampaignID   *string
	FormID       *string

	// Extra holds passthrough fields from non-provider imports.
	Extra map[string]string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Note is one append-only annotation on a lead. Notes keep insertion order
// and are never edited or deleted once appended.
type Note struct {
	ID        uuid.UUID
	LeadID    uuid.UUID
	Content   string
	AuthorID  uuid.UUID
	CreatedAt time.Time
}
