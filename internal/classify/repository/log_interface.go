package repository

import (
	"context"

	"mailclassifier-backend/internal/classify/domain"
)

// LogRepository is the append-only audit log sink. Entries are written once
// per classification attempt and never updated or deleted.
type LogRepository interface {
	// Save persists the entry, assigning its ID, and returns the stored record.
	Save(ctx context.Context, log *domain.ClassificationLog) (*domain.ClassificationLog, error)
	// ListRecent returns up to limit entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.ClassificationLog, error)
	// GetByID returns the entry or nil when it does not exist.
	GetByID(ctx context.Context, id string) (*domain.ClassificationLog, error)
}
