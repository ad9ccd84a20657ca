package interfaces

import (
	"context"
	"errors"

	"rioserver/internal/models"
)

// ErrSubmissionNotFound is returned by GetByID when no document matches
// a well-formed id.
var ErrSubmissionNotFound = errors.New("submission not found")

// SubmissionRepository is the append-only store behind the intake
// fan-out and the admin read endpoints.
type SubmissionRepository interface {
	// Insert persists one submission and returns its hex record id.
	Insert(ctx context.Context, formType models.FormType, payload interface{}, attachments []models.AttachmentMeta) (string, error)

	// ListRecent returns up to limit submissions, newest first.
	ListRecent(ctx context.Context, formType models.FormType, limit int64) ([]models.Submission, error)

	// GetByID fetches one submission. A syntactically invalid id fails
	// with a ValidationError before any query is issued.
	GetByID(ctx context.Context, formType models.FormType, id string) (*models.Submission, error)
}
