package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"leadtrack_backend/internal/imports"
	"leadtrack_backend/internal/leads/access"
	"leadtrack_backend/internal/leads/importer"
	"leadtrack_backend/internal/leads/transport"
	"leadtrack_backend/platform/apperr"

	"github.com/google/uuid"
)

const importReportLimit = 50

// FileImport is one uploaded batch file import.
type FileImport struct {
	Format      importer.Format
	FileName    string
	ContentType string
	Data        []byte
}

// ImportFile parses an uploaded CSV or spreadsheet file, imports the valid
// rows and records an import report. The raw file is archived best effort;
// archival failure never fails the import.
func (s *Service) ImportFile(ctx context.Context, actorID uuid.UUID, in FileImport) (transport.ImportResponse, error) {
	report, err := s.importer.Import(ctx, importer.Input{
		Format:  in.Format,
		Data:    in.Data,
		ActorID: actorID,
	})
	if err != nil {
		return transport.ImportResponse{}, mapImportError(err)
	}

	fileKey := s.archiveFile(ctx, in)
	s.recordImport(ctx, actorID, in.Format, in.FileName, fileKey, report)

	return toImportResponse(report), nil
}

// ImportProvider imports a pre-fetched provider lead array.
func (s *Service) ImportProvider(ctx context.Context, actorID uuid.UUID, req transport.ProviderImportRequest) (transport.ImportResponse, error) {
	report, err := s.importer.Import(ctx, importer.Input{
		Format:           importer.FormatProvider,
		ProviderPayloads: req.Leads,
		ActorID:          actorID,
	})
	if err != nil {
		return transport.ImportResponse{}, mapImportError(err)
	}

	s.recordImport(ctx, actorID, importer.FormatProvider, "", "", report)

	return toImportResponse(report), nil
}

// ListImports returns recent import reports. Admins see every actor's
// imports, everyone else only their own.
func (s *Service) ListImports(ctx context.Context, scope access.Scope) ([]transport.ImportReportResponse, error) {
	reports, err := s.importsRepo.List(ctx, scope.ActorID, scope.Mode == access.ModeAll, importReportLimit)
	if err != nil {
		s.log.DatabaseError("list import reports", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list imports", err)
	}

	out := make([]transport.ImportReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, transport.ImportReportResponse{
			ID:            r.ID,
			Source:        r.Source,
			FileName:      r.FileName,
			ImportedCount: r.ImportedCount,
			ErrorCount:    r.ErrorCount,
			Errors:        r.Errors,
			CreatedBy:     r.CreatedBy,
			CreatedAt:     r.CreatedAt,
		})
	}

	return out, nil
}

func (s *Service) archiveFile(ctx context.Context, in FileImport) string {
	if s.archiver == nil || len(in.Data) == 0 {
		return ""
	}

	key := fmt.Sprintf("%s/%s-%s", time.Now().UTC().Format("2006/01/02"), uuid.New().String(), in.FileName)
	if err := s.archiver.Archive(ctx, key, in.Data, in.ContentType); err != nil {
		s.log.Error("import file archive failed", "key", key, "error", err)
		return ""
	}
	return key
}

func (s *Service) recordImport(ctx context.Context, actorID uuid.UUID, format importer.Format, fileName, fileKey string, report importer.Report) {
	source, _ := importer.SourceFor(format)
	if _, err := s.importsRepo.Record(ctx, imports.Report{
		Source:        string(source),
		FileName:      fileName,
		FileKey:       fileKey,
		ImportedCount: report.ImportedCount,
		ErrorCount:    report.ErrorCount,
		Errors:        report.Errors,
		CreatedBy:     actorID,
	}); err != nil {
		s.log.DatabaseError("record import report", err)
	}
}

// mapImportError translates pipeline failures into transport errors. Row
// level errors never arrive here; they ride inside a successful report.
func mapImportError(err error) error {
	switch {
	case errors.Is(err, importer.ErrUnsupportedFormat):
		return apperr.BadRequest("unsupported import format")
	case errors.Is(err, importer.ErrMalformedInput):
		return apperr.BadRequest("import file is malformed or has no data rows")
	case errors.Is(err, importer.ErrEmptyInput):
		return apperr.BadRequest("import contains no rows")
	case errors.Is(err, importer.ErrPersistence):
		return apperr.Wrap(apperr.KindInternal, "failed to save imported leads", err)
	default:
		return apperr.Wrap(apperr.KindInternal, "import failed", err)
	}
}

func toImportResponse(report importer.Report) transport.ImportResponse {
	return transport.ImportResponse{
		Success:       true,
		Message:       fmt.Sprintf("Imported %d of %d leads", report.ImportedCount, report.ImportedCount+report.ErrorCount),
		ImportedCount: report.ImportedCount,
		ErrorCount:    report.ErrorCount,
		Leads:         transport.ToLeadResponses(report.Accepted),
		Errors:        report.Errors,
	}
}
