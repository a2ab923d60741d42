package importer

import (
	"context"
	"errors"
	"testing"

	"leadtrack_backend/internal/leads/domain"
	"leadtrack_backend/platform/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	created []domain.Lead
	calls   int
	err     error
}

func (s *fakeStore) BulkCreate(_ context.Context, drafts []domain.Lead) ([]domain.Lead, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Lead, len(drafts))
	for i, d := range drafts {
		d.ID = uuid.New()
		out[i] = d
	}
	s.created = append(s.created, out...)
	return out, nil
}

func newTestImporter(store *fakeStore) *Importer {
	return New(store, "ZA", logger.New("development"))
}

func TestImportCSVPartialAcceptance(t *testing.T) {
	csv := "name,surname,email_address,mobile_number\n" +
		"John,Doe,john@x.com,+27821234567\n" +
		"Jane,,jane@x.com,+27821111111\n" +
		"Bob,Lee,not-an-email,+27822222222\n"

	store := &fakeStore{}
	actor := uuid.New()

	report, err := newTestImporter(store).Import(context.Background(), Input{
		Format:  FormatCSV,
		Data:    []byte(csv),
		ActorID: actor,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.ImportedCount)
	assert.Equal(t, 2, report.ErrorCount)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, "Row 2: Name and surname are required", report.Errors[0])
	assert.Equal(t, "Row 3: Invalid email format", report.Errors[1])

	require.Len(t, report.Accepted, 1)
	lead := report.Accepted[0]
	assert.Equal(t, domain.SourceCSVImport, lead.Source)
	assert.Equal(t, domain.StatusNew, lead.Status)
	assert.Equal(t, actor, lead.CreatedBy)
	assert.Equal(t, "John", lead.Name)
	assert.Equal(t, "+27821234567", lead.MobileNumber)
}

func TestImportCountsPartitionRows(t *testing.T) {
	csv := "name,surname,email,mobile\n" +
		"A,One,a@x.com,1\n" +
		"B,,b@x.com,2\n" +
		"C,Three,c@x.com,3\n" +
		"D,Four,broken,4\n" +
		"E,Five,e@x.com,\n"

	report, err := newTestImporter(&fakeStore{}).Import(context.Background(), Input{
		Format:  FormatCSV,
		Data:    []byte(csv),
		ActorID: uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.ImportedCount)
	assert.Equal(t, 3, report.ErrorCount)
	assert.Len(t, report.Errors, report.ErrorCount)
}

func TestImportHeaderOnlyCSVFails(t *testing.T) {
	store := &fakeStore{}
	_, err := newTestImporter(store).Import(context.Background(), Input{
		Format:  FormatCSV,
		Data:    []byte("name,surname\n"),
		ActorID: uuid.New(),
	})

	assert.ErrorIs(t, err, ErrMalformedInput)
	assert.Zero(t, store.calls)
}

func TestImportEmptyProviderPayloadFails(t *testing.T) {
	store := &fakeStore{}
	_, err := newTestImporter(store).Import(context.Background(), Input{
		Format:  FormatProvider,
		ActorID: uuid.New(),
	})

	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Zero(t, store.calls)
}

func TestImportProviderPayloads(t *testing.T) {
	payloads := []map[string]any{
		{
			"name":        "John",
			"surname":     "Doe",
			"email":       "john@x.com",
			"mobile":      "+27821234567",
			"ad_id":       "ad-1",
			"campaign_id": "camp-9",
			"form_id":     "form-7",
			"platform":    "fb",
		},
	}

	store := &fakeStore{}
	report, err := newTestImporter(store).Import(context.Background(), Input{
		Format:           FormatProvider,
		ProviderPayloads: payloads,
		ActorID:          uuid.New(),
	})
	require.NoError(t, err)

	require.Len(t, report.Accepted, 1)
	lead := report.Accepted[0]
	assert.Equal(t, domain.SourceProviderForm, lead.Source)
	require.NotNil(t, lead.AdID)
	assert.Equal(t, "ad-1", *lead.AdID)
	require.NotNil(t, lead.CampaignID)
	assert.Equal(t, "camp-9", *lead.CampaignID)
	require.NotNil(t, lead.FormID)
	assert.Equal(t, "form-7", *lead.FormID)

	// Unrecognized provider keys land in the provider bag, not Extra.
	assert.Equal(t, "fb", lead.ProviderData["platform"])
	assert.Nil(t, lead.Extra)
}

func TestImportPersistenceFailureIsFatal(t *testing.T) {
	store := &fakeStore{err: errors.New("store unavailable")}
	_, err := newTestImporter(store).Import(context.Background(), Input{
		Format:  FormatCSV,
		Data:    []byte("name,surname,email,mobile\nJohn,Doe,j@x.com,1\n"),
		ActorID: uuid.New(),
	})

	assert.ErrorIs(t, err, ErrPersistence)
}

func TestImportAllRowsInvalidSkipsWrite(t *testing.T) {
	store := &fakeStore{}
	report, err := newTestImporter(store).Import(context.Background(), Input{
		Format:  FormatCSV,
		Data:    []byte("name,surname,email,mobile\nJohn,,j@x.com,1\n"),
		ActorID: uuid.New(),
	})
	require.NoError(t, err)

	assert.Zero(t, store.calls)
	assert.Equal(t, 0, report.ImportedCount)
	assert.Equal(t, 1, report.ErrorCount)
}

func TestImportUnsupportedFormat(t *testing.T) {
	_, err := newTestImporter(&fakeStore{}).Import(context.Background(), Input{
		Format:  Format("pdf"),
		ActorID: uuid.New(),
	})

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
