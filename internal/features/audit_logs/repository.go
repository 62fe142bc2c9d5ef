package audit_logs

import (
	"context"
	"time"

	"deskstore/internal/storage"

	"github.com/google/uuid"
)

type AuditRecordRepository struct{}

func (r *AuditRecordRepository) Create(ctx context.Context, record *AuditRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}

	return storage.GetDb().WithContext(ctx).Create(record).Error
}

func (r *AuditRecordRepository) GetRecent(limit int, before *time.Time) ([]*AuditRecord, error) {
	var records = make([]*AuditRecord, 0)

	query := storage.GetDb().Model(&AuditRecord{})

	if before != nil {
		query = query.Where("timestamp < ?", *before)
	}

	err := query.
		Order("timestamp DESC").
		Limit(limit).
		Find(&records).Error

	return records, err
}

func (r *AuditRecordRepository) CountAll() (int64, error) {
	var count int64

	err := storage.GetDb().Model(&AuditRecord{}).Count(&count).Error

	return count, err
}
