package usecase

import (
	"context"

	"mailclassifier-backend/internal/classify/domain"
)

// TextInput is one classification request entering the orchestrator.
type TextInput struct {
	Subject   string
	Body      string
	Sender    string
	ProfileID string
	Source    string // json | file | imap
	FileName  string
}

// ClassifyUsecase threads one email through extraction, tokenization,
// classification, reply suggestion and audit logging.
type ClassifyUsecase interface {
	ExecuteFromText(ctx context.Context, in TextInput) (domain.ClassificationResult, error)
	ExecuteFromFile(ctx context.Context, fileName string, raw []byte, in TextInput) (domain.ClassificationResult, error)
	ListLogs(ctx context.Context, limit int) ([]*domain.ClassificationLog, error)
	GetLog(ctx context.Context, id string) (*domain.ClassificationLog, error)
}
