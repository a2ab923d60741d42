package service

import (
	"context"
	"errors"

	"leadtrack_backend/internal/leads/access"
	"leadtrack_backend/internal/leads/repository"
	"leadtrack_backend/internal/leads/transport"
	"leadtrack_backend/platform/apperr"

	"github.com/google/uuid"
)

// AddNote appends a note to a lead the scope allows seeing.
func (s *Service) AddNote(ctx context.Context, scope access.Scope, leadID uuid.UUID, req transport.AddNoteRequest) (transport.NoteResponse, error) {
	if err := s.ensureVisible(ctx, scope, leadID); err != nil {
		return transport.NoteResponse{}, err
	}

	note, err := s.repo.AddNote(ctx, leadID, scope.ActorID, req.Content)
	if err != nil {
		s.log.DatabaseError("add lead note", err)
		return transport.NoteResponse{}, apperr.Wrap(apperr.KindInternal, "failed to add note", err)
	}

	return transport.ToNoteResponse(note), nil
}

// ListNotes returns a lead's notes oldest first.
func (s *Service) ListNotes(ctx context.Context, scope access.Scope, leadID uuid.UUID) ([]transport.NoteResponse, error) {
	if err := s.ensureVisible(ctx, scope, leadID); err != nil {
		return nil, err
	}

	notes, err := s.repo.ListNotes(ctx, leadID)
	if err != nil {
		s.log.DatabaseError("list lead notes", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list notes", err)
	}

	out := make([]transport.NoteResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, transport.ToNoteResponse(note))
	}
	return out, nil
}

// ensureVisible resolves the lead under the scope so hidden leads read as
// not found rather than forbidden.
func (s *Service) ensureVisible(ctx context.Context, scope access.Scope, leadID uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, leadID, scope); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("lead not found")
		}
		s.log.DatabaseError("get lead", err)
		return apperr.Wrap(apperr.KindInternal, "failed to fetch lead", err)
	}
	return nil
}
