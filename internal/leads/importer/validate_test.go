package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowFrom(pairs map[string]string) Row {
	row := Row{Index: 1}
	for k, v := range pairs {
		row.Fields = append(row.Fields, Field{Key: k, Value: v})
	}
	return MapRow(row)
}

func TestValidateRowAccepts(t *testing.T) {
	draft, errs := ValidateRow(rowFrom(map[string]string{
		"name":          "John",
		"surname":       "Doe",
		"email_address": "john@x.com",
		"mobile_number": "+27821234567",
	}))

	require.Nil(t, errs)
	assert.Equal(t, "John", draft.Name)
	assert.Equal(t, "Doe", draft.Surname)
	assert.Equal(t, "john@x.com", draft.EmailAddress)
	assert.Equal(t, "+27821234567", draft.MobileNumber)
}

func TestValidateRowRequiredFields(t *testing.T) {
	cases := []struct {
		name string
		row  map[string]string
		want []string
	}{
		{
			"missing surname",
			map[string]string{"name": "Jane", "email": "jane@x.com", "mobile": "+27821111111"},
			[]string{msgNameRequired},
		},
		{
			"blank name after trimming",
			map[string]string{"name": "   ", "surname": "Roe", "email": "j@x.com", "mobile": "1"},
			[]string{msgNameRequired},
		},
		{
			"invalid email",
			map[string]string{"name": "Bob", "surname": "Lee", "email": "not-an-email", "mobile": "+27822222222"},
			[]string{msgEmailInvalid},
		},
		{
			"missing email",
			map[string]string{"name": "Bob", "surname": "Lee", "mobile": "+27822222222"},
			[]string{msgEmailRequired},
		},
		{
			"missing mobile",
			map[string]string{"name": "Bob", "surname": "Lee", "email": "bob@x.com"},
			[]string{msgMobileRequired},
		},
		{
			"all violations collected in rule order",
			map[string]string{"email": "nope"},
			[]string{msgNameRequired, msgEmailInvalid, msgMobileRequired},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, errs := ValidateRow(rowFrom(tc.row))
			assert.Equal(t, tc.want, errs)
		})
	}
}

func TestValidateRowAcceptsRegardlessOfOtherFields(t *testing.T) {
	draft, errs := ValidateRow(rowFrom(map[string]string{
		"name":           "John",
		"surname":        "Doe",
		"email":          "john@x.com",
		"mobile":         "0821234567",
		"employee_count": "12",
		"industry":       "mining",
		"mystery_column": "anything at all",
	}))

	require.Nil(t, errs)
	require.NotNil(t, draft.EmployeeCount)
	assert.Equal(t, 12, *draft.EmployeeCount)
	assert.Equal(t, "mining", draft.Industry)
	assert.Equal(t, "anything at all", draft.Extra["mystery_column"])
}

func TestValidateRowNonNumericEmployeeCount(t *testing.T) {
	draft, errs := ValidateRow(rowFrom(map[string]string{
		"name":           "John",
		"surname":        "Doe",
		"email":          "john@x.com",
		"mobile":         "1",
		"employee_count": "about fifty",
	}))

	require.Nil(t, errs)
	assert.Nil(t, draft.EmployeeCount)
}

func TestFormatRowError(t *testing.T) {
	got := FormatRowError(3, []string{msgEmailInvalid, msgMobileRequired})
	assert.Equal(t, "Row 3: Invalid email format, Mobile number is required", got)
}
