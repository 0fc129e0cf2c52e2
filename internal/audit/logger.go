package audit

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/property-booking/internal/models"
	"github.com/BruksfildServices01/property-booking/internal/pagination"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&log).Error
}

type Query struct {
	UserID string
	Action string
	Entity string
	pagination.Params
}

// List returns the user's audit entries, newest first.
func (l *Logger) List(ctx context.Context, q Query) ([]models.AuditLog, int64, error) {
	tx := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("user_id = ?", q.UserID)

	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		tx = tx.Where("entity = ?", q.Entity)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := tx.
		Order("created_at DESC").
		Limit(q.Limit()).
		Offset(q.Offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
