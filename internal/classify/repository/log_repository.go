package repository

import (
	"context"
	"time"

	"mailclassifier-backend/internal/classify/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// logRepository implements LogRepository on top of GORM.
type logRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Save(ctx context.Context, log *domain.ClassificationLog) (*domain.ClassificationLog, error) {
	stored := *log
	if stored.ID == "" {
		stored.ID = uuid.New().String()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *logRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ClassificationLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var logs []*domain.ClassificationLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *logRepository) GetByID(ctx context.Context, id string) (*domain.ClassificationLog, error) {
	var log domain.ClassificationLog
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&log).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
