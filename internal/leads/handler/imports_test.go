package handler

import (
	"testing"

	"leadtrack_backend/internal/leads/importer"

	"github.com/stretchr/testify/require"
)

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name      string
		formValue string
		fileName  string
		want      importer.Format
		ok        bool
	}{
		{"explicit csv", "csv", "leads.xlsx", importer.FormatCSV, true},
		{"explicit xlsx", "xlsx", "leads.csv", importer.FormatSpreadsheet, true},
		{"spreadsheet alias", "spreadsheet", "leads.bin", importer.FormatSpreadsheet, true},
		{"uppercase form value", "CSV", "leads.bin", importer.FormatCSV, true},
		{"fallback to csv extension", "", "leads.csv", importer.FormatCSV, true},
		{"fallback to xlsx extension", "", "Leads.XLSX", importer.FormatSpreadsheet, true},
		{"unknown form value", "pdf", "leads.csv", "", false},
		{"unknown extension", "", "leads.txt", "", false},
		{"no hint at all", "", "leads", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveFormat(tt.formValue, tt.fileName)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
