package repository

import (
	"context"

	"leadtrack_backend/internal/leads/domain"

	"github.com/google/uuid"
)

// AddNote appends a note to a lead. Notes are append-only; there is no
// update or delete path.
func (r *Repository) AddNote(ctx context.Context, leadID uuid.UUID, authorID uuid.UUID, content string) (domain.Note, error) {
	var note domain.Note
	err := r.pool.QueryRow(ctx, `
		INSERT INTO lead_notes (lead_id, author_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, lead_id, content, author_id, created_at
	`, leadID, authorID, content).Scan(&note.ID, &note.LeadID, &note.Content, &note.AuthorID, &note.CreatedAt)
	return note, err
}

// ListNotes returns a lead's notes in insertion order.
func (r *Repository) ListNotes(ctx context.Context, leadID uuid.UUID) ([]domain.Note, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, lead_id, content, author_id, created_at
		FROM lead_notes
		WHERE lead_id = $1
		ORDER BY created_at ASC, id ASC
	`, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]domain.Note, 0)
	for rows.Next() {
		var note domain.Note
		if err := rows.Scan(&note.ID, &note.LeadID, &note.Content, &note.AuthorID, &note.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, rows.Err()
}
