package importer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Human-facing row validation messages, combined per row in rule order.
const (
	msgNameRequired   = "Name and surname are required"
	msgEmailRequired  = "Email address is required"
	msgEmailInvalid   = "Invalid email format"
	msgMobileRequired = "Mobile number is required"
)

// emailShape accepts the simple local@domain.tld shape; it is deliberately
// loose compared to full RFC 5322.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Draft is an accepted canonical lead draft, not yet stamped with provenance
// or persisted. Extra carries every passthrough field unchanged.
type Draft struct {
	Name            string
	Surname         string
	EmailAddress    string
	MobileNumber    string
	TelephoneNumber string
	WhatsAppNumber  string

	CompanyTradingName    string
	CompanyRegisteredName string
	CompanyAddress        string
	Industry              string
	EmployeeCount         *int
	CompanySize           string
	AnnualTurnover        string

	AdID       *string
	CampaignID *string
	FormID     *string

	Extra map[string]string
}

// ValidateRow applies the required-field and format rules to a mapped row.
// All violations are collected before deciding; the result is either an
// accepted draft (nil errors) or the error messages, never both.
func ValidateRow(row Row) (Draft, []string) {
	name := strings.TrimSpace(valueOf(row, FieldName))
	surname := strings.TrimSpace(valueOf(row, FieldSurname))
	email := strings.TrimSpace(valueOf(row, FieldEmailAddress))
	mobile := strings.TrimSpace(valueOf(row, FieldMobileNumber))

	var errs []string
	if name == "" || surname == "" {
		errs = append(errs, msgNameRequired)
	}
	if email == "" {
		errs = append(errs, msgEmailRequired)
	} else if !emailShape.MatchString(email) {
		errs = append(errs, msgEmailInvalid)
	}
	if mobile == "" {
		errs = append(errs, msgMobileRequired)
	}
	if len(errs) > 0 {
		return Draft{}, errs
	}

	draft := Draft{
		Name:                  name,
		Surname:               surname,
		EmailAddress:          email,
		MobileNumber:          mobile,
		TelephoneNumber:       valueOf(row, FieldTelephoneNumber),
		WhatsAppNumber:        valueOf(row, FieldWhatsAppNumber),
		CompanyTradingName:    valueOf(row, FieldCompanyTradingName),
		CompanyRegisteredName: valueOf(row, FieldCompanyRegisteredName),
		CompanyAddress:        valueOf(row, FieldCompanyAddress),
		Industry:              valueOf(row, FieldIndustry),
		CompanySize:           valueOf(row, FieldCompanySize),
		AnnualTurnover:        valueOf(row, FieldAnnualTurnover),
	}

	if raw := valueOf(row, FieldEmployeeCount); raw != "" {
		if count, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			draft.EmployeeCount = &count
		} else {
			// Not numeric; keep the raw text rather than dropping it.
			draft.Extra = map[string]string{FieldEmployeeCount: raw}
		}
	}
	if v := valueOf(row, FieldAdID); v != "" {
		draft.AdID = &v
	}
	if v := valueOf(row, FieldCampaignID); v != "" {
		draft.CampaignID = &v
	}
	if v := valueOf(row, FieldFormID); v != "" {
		draft.FormID = &v
	}

	for _, f := range row.Fields {
		if f.Canonical {
			continue
		}
		if draft.Extra == nil {
			draft.Extra = make(map[string]string)
		}
		draft.Extra[f.Key] = f.Value
	}

	return draft, nil
}

// FormatRowError combines a row's violations into the single per-row error
// string reported to the caller.
func FormatRowError(index int, msgs []string) string {
	return fmt.Sprintf("Row %d: %s", index, strings.Join(msgs, ", "))
}

func valueOf(row Row, key string) string {
	v, _ := row.Get(key)
	return v
}
