package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapRowAliases(t *testing.T) {
	cases := []struct {
		key  string
		want string
	}{
		{"first_name", FieldName},
		{"firstName", FieldName},
		{"last_name", FieldSurname},
		{"email", FieldEmailAddress},
		{"email_address", FieldEmailAddress},
		{"emailAddress", FieldEmailAddress},
		{"mobile_number", FieldMobileNumber},
		{"mobileNumber", FieldMobileNumber},
		{"company_trading_name", FieldCompanyTradingName},
		{"companyTradingName", FieldCompanyTradingName},
		{"Trading Name", FieldCompanyTradingName},
		{"employee_count", FieldEmployeeCount},
		{"ad_id", FieldAdID},
		{"campaign_id", FieldCampaignID},
		{"form_id", FieldFormID},
	}

	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			mapped := MapRow(Row{Index: 1, Fields: []Field{{Key: tc.key, Value: "v"}}})
			assert.Equal(t, tc.want, mapped.Fields[0].Key)
			assert.True(t, mapped.Fields[0].Canonical)
			assert.Equal(t, "v", mapped.Fields[0].Value)
		})
	}
}

func TestMapRowPassesUnknownKeysThrough(t *testing.T) {
	mapped := MapRow(Row{Index: 3, Fields: []Field{
		{Key: "favourite_colour", Value: "teal"},
		{Key: "name", Value: "John"},
	}})

	assert.Equal(t, 3, mapped.Index)
	assert.Equal(t, "favourite_colour", mapped.Fields[0].Key)
	assert.False(t, mapped.Fields[0].Canonical)
	assert.Equal(t, "teal", mapped.Fields[0].Value)
	assert.True(t, mapped.Fields[1].Canonical)
}

func TestMapRowIdempotent(t *testing.T) {
	row := Row{Index: 1, Fields: []Field{
		{Key: "first_name", Value: "John"},
		{Key: "whatsApp_extra", Value: "x"},
	}}

	once := MapRow(row)
	twice := MapRow(once)
	assert.Equal(t, once, twice)
}

func TestMapRowTotalOnEmptyRow(t *testing.T) {
	mapped := MapRow(Row{Index: 9})
	assert.Equal(t, 9, mapped.Index)
	assert.Empty(t, mapped.Fields)
}
