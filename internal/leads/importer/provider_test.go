package importer

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderReaderIdentityMapping(t *testing.T) {
	reader := NewProviderReader([]map[string]any{
		{
			"full_name": "irrelevant",
			"name":      "John",
			"surname":   "Doe",
			"email":     "john@x.com",
			"mobile":    "+27821234567",
			"ad_id":     float64(991),
			"is_test":   false,
		},
	})

	row, err := reader.ReadRow()
	require.NoError(t, err)
	assert.Equal(t, 1, row.Index)

	v, _ := row.Get("ad_id")
	assert.Equal(t, "991", v)
	v, _ = row.Get("is_test")
	assert.Equal(t, "false", v)

	_, err = reader.ReadRow()
	assert.Equal(t, io.EOF, err)
}

func TestProviderReaderStableKeyOrder(t *testing.T) {
	payload := map[string]any{"b": "2", "a": "1", "c": "3"}

	first, err := NewProviderReader([]map[string]any{payload}).ReadRow()
	require.NoError(t, err)
	second, err := NewProviderReader([]map[string]any{payload}).ReadRow()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "a", first.Fields[0].Key)
}

func TestProviderReaderNestedValuesJSONEncoded(t *testing.T) {
	reader := NewProviderReader([]map[string]any{
		{"field_data": []any{map[string]any{"k": "budget", "v": "high"}}},
	})

	row, err := reader.ReadRow()
	require.NoError(t, err)

	v, _ := row.Get("field_data")
	assert.JSONEq(t, `[{"k":"budget","v":"high"}]`, v)
}
