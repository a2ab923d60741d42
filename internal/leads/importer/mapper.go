package importer

import (
	"strings"
	"unicode"
)

// Canonical field names recognized by the mapper.
const (
	FieldName                  = "name"
	FieldSurname               = "surname"
	FieldEmailAddress          = "emailAddress"
	FieldMobileNumber          = "mobileNumber"
	FieldTelephoneNumber       = "telephoneNumber"
	FieldWhatsAppNumber        = "whatsappNumber"
	FieldCompanyTradingName    = "companyTradingName"
	FieldCompanyRegisteredName = "companyRegisteredName"
	FieldCompanyAddress        = "companyAddress"
	FieldIndustry              = "industry"
	FieldEmployeeCount         = "employeeCount"
	FieldCompanySize           = "companySize"
	FieldAnnualTurnover        = "annualTurnover"
	FieldAdID                  = "adId"
	FieldCampaignID            = "campaignId"
	FieldFormID                = "formId"
)

// aliasTable maps normalized (snake_case, lowercased) source keys to
// canonical field names. Sources vary between snake_case, camelCase and
// provider-native names; normalizeKey folds all of them onto the snake form
// so each canonical name needs its aliases listed once. Every canonical name
// normalizes to a key in this table, which is what makes MapRow idempotent.
var aliasTable = map[string]string{
	"name":       FieldName,
	"first_name": FieldName,
	"firstname":  FieldName,

	"surname":   FieldSurname,
	"last_name": FieldSurname,
	"lastname":  FieldSurname,

	"email":         FieldEmailAddress,
	"email_address": FieldEmailAddress,

	"mobile":        FieldMobileNumber,
	"mobile_number": FieldMobileNumber,
	"cell_number":   FieldMobileNumber,
	"phone_number":  FieldMobileNumber,

	"telephone":        FieldTelephoneNumber,
	"telephone_number": FieldTelephoneNumber,
	"landline":         FieldTelephoneNumber,

	"whatsapp":        FieldWhatsAppNumber,
	"whatsapp_number": FieldWhatsAppNumber,

	"company_trading_name": FieldCompanyTradingName,
	"trading_name":         FieldCompanyTradingName,
	"company_name":         FieldCompanyTradingName,
	"company":              FieldCompanyTradingName,

	"company_registered_name": FieldCompanyRegisteredName,
	"registered_name":         FieldCompanyRegisteredName,

	"company_address": FieldCompanyAddress,
	"address":         FieldCompanyAddress,

	"industry": FieldIndustry,

	"employee_count":      FieldEmployeeCount,
	"number_of_employees": FieldEmployeeCount,
	"employees":           FieldEmployeeCount,

	"company_size": FieldCompanySize,

	"annual_turnover": FieldAnnualTurnover,
	"turnover":        FieldAnnualTurnover,

	"ad_id":       FieldAdID,
	"campaign_id": FieldCampaignID,
	"form_id":     FieldFormID,
}

// MapRow rewrites a row's source-specific keys to canonical field names.
// It is pure and total: keys with no alias are copied through unchanged
// under their original name, never dropped, and an already-canonical row
// maps to itself.
func MapRow(row Row) Row {
	out := Row{Index: row.Index, Fields: make([]Field, 0, len(row.Fields))}
	for _, f := range row.Fields {
		if canonical, ok := aliasTable[normalizeKey(f.Key)]; ok {
			out.Fields = append(out.Fields, Field{Key: canonical, Value: f.Value, Canonical: true})
			continue
		}
		out.Fields = append(out.Fields, Field{Key: f.Key, Value: f.Value})
	}
	return out
}

// normalizeKey folds a header into snake_case lowercase: spaces and dashes
// become underscores, and camelCase boundaries gain one.
func normalizeKey(key string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range strings.TrimSpace(key) {
		switch {
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
			prevLower = false
		case unicode.IsUpper(r):
			if prevLower {
				b.WriteRune('_')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		}
	}
	return b.String()
}
