package repository

import (
	"context"

	"hospital-reception-backend/internal/models"

	"gorm.io/gorm"
)

type QueryLogRepository struct {
	db *gorm.DB
}

func NewQueryLogRepo(db *gorm.DB) *QueryLogRepository {
	return &QueryLogRepository{db: db}
}

// CreateQueryLog records one tool invocation
func (r *QueryLogRepository) CreateQueryLog(ctx context.Context, entry *models.QueryLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// RecentQueryLogs returns the latest invocations, newest first
func (r *QueryLogRepository) RecentQueryLogs(ctx context.Context, limit int) ([]models.QueryLog, error) {
	var logs []models.QueryLog
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
