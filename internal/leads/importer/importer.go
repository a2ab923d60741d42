package importer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"leadtrack_backend/internal/leads/domain"
	"leadtrack_backend/platform/logger"
	"leadtrack_backend/platform/phone"

	"github.com/google/uuid"
)

// Format declares how a raw import payload should be parsed.
type Format string

const (
	FormatCSV         Format = "csv"
	FormatSpreadsheet Format = "xlsx"
	FormatProvider    Format = "provider"
)

// RowReader yields source rows in order. Readers are cheap to construct, so
// restarting a source means building a new reader over the same input.
type RowReader interface {
	// ReadRow returns the next row, io.EOF after the last one.
	ReadRow() (Row, error)
}

// LeadWriter persists accepted drafts as one atomic bulk insert.
// Either every draft is written or none are.
type LeadWriter interface {
	BulkCreate(ctx context.Context, drafts []domain.Lead) ([]domain.Lead, error)
}

// Input is one batch import invocation.
type Input struct {
	Format Format
	// Data is the raw file payload for csv/xlsx imports.
	Data []byte
	// ProviderPayloads is the pre-fetched provider lead array for provider
	// imports; fetching and token exchange happen upstream.
	ProviderPayloads []map[string]any
	// ActorID is the importing user.
	ActorID uuid.UUID
}

// Report is the outcome of a completed import.
type Report struct {
	Accepted      []domain.Lead
	ImportedCount int
	ErrorCount    int
	Errors        []string
}

// Importer orchestrates parse, map, validate and the final bulk write.
type Importer struct {
	store       LeadWriter
	phoneRegion string
	log         *logger.Logger
}

// New creates a batch importer writing through the given store.
func New(store LeadWriter, phoneRegion string, log *logger.Logger) *Importer {
	return &Importer{store: store, phoneRegion: phoneRegion, log: log}
}

// Import streams rows from the matching source parser, maps and validates
// each one in order, then persists all accepted drafts as a single bulk
// insert. Row failures are collected and reported, never fatal; only
// malformed/empty input and the final write can fail the invocation.
func (imp *Importer) Import(ctx context.Context, in Input) (Report, error) {
	reader, source, err := imp.openReader(in)
	if err != nil {
		return Report{}, err
	}

	var (
		drafts    []domain.Lead
		rowErrors []string
		rowCount  int
	)

	for {
		row, err := reader.ReadRow()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Structural parse failures abort with zero rows imported.
			return Report{}, err
		}

		rowCount++
		draft, msgs := ValidateRow(MapRow(row))
		if len(msgs) > 0 {
			rowErrors = append(rowErrors, FormatRowError(row.Index, msgs))
			continue
		}

		drafts = append(drafts, imp.stamp(draft, source, in.ActorID))
	}

	if rowCount == 0 {
		return Report{}, ErrEmptyInput
	}

	var created []domain.Lead
	if len(drafts) > 0 {
		created, err = imp.store.BulkCreate(ctx, drafts)
		if err != nil {
			return Report{}, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	imp.log.ImportCompleted(string(source), in.ActorID.String(), len(created), len(rowErrors))

	return Report{
		Accepted:      created,
		ImportedCount: len(created),
		ErrorCount:    len(rowErrors),
		Errors:        rowErrors,
	}, nil
}

// SourceFor maps a payload format to the provenance recorded on every lead
// it produces.
func SourceFor(format Format) (domain.Source, bool) {
	switch format {
	case FormatCSV:
		return domain.SourceCSVImport, true
	case FormatSpreadsheet:
		return domain.SourceSpreadsheetImport, true
	case FormatProvider:
		return domain.SourceProviderForm, true
	default:
		return "", false
	}
}

func (imp *Importer) openReader(in Input) (RowReader, domain.Source, error) {
	source, ok := SourceFor(in.Format)
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, in.Format)
	}

	switch in.Format {
	case FormatCSV:
		reader, err := NewCSVReader(in.Data)
		return reader, source, err
	case FormatSpreadsheet:
		reader, err := NewSpreadsheetReader(in.Data)
		return reader, source, err
	default:
		return NewProviderReader(in.ProviderPayloads), source, nil
	}
}

// stamp turns an accepted draft into a lead draft carrying provenance, the
// importing actor and the initial funnel status.
func (imp *Importer) stamp(draft Draft, source domain.Source, actorID uuid.UUID) domain.Lead {
	lead := domain.Lead{
		Source:                source,
		Status:                domain.StatusNew,
		CreatedBy:             actorID,
		Name:                  draft.Name,
		Surname:               draft.Surname,
		EmailAddress:          draft.EmailAddress,
		MobileNumber:          phone.NormalizeE164(draft.MobileNumber, imp.phoneRegion),
		TelephoneNumber:       draft.TelephoneNumber,
		WhatsAppNumber:        draft.WhatsAppNumber,
		CompanyTradingName:    draft.CompanyTradingName,
		CompanyRegisteredName: draft.CompanyRegisteredName,
		CompanyAddress:        draft.CompanyAddress,
		Industry:              draft.Industry,
		EmployeeCount:         draft.EmployeeCount,
		CompanySize:           draft.CompanySize,
		AnnualTurnover:        draft.AnnualTurnover,
		AdID:                  draft.AdID,
		CampaignID:            draft.CampaignID,
		FormID:                draft.FormID,
	}

	if source == domain.SourceProviderForm {
		lead.ProviderData = draft.Extra
	} else {
		lead.Extra = draft.Extra
	}

	return lead
}
