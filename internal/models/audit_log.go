package models

import "time"

// AuditLog is one recorded action. Metadata holds the event's JSON object as
// text. Entries are listed per user, newest first.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID string `gorm:"type:uuid;not null;index:idx_audit_logs_user_created,priority:1" json:"user_id"`
	Action string `gorm:"size:50;not null" json:"action"`

	Entity   string `gorm:"size:50" json:"entity"`
	EntityID string `gorm:"size:36" json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `gorm:"index:idx_audit_logs_user_created,priority:2,sort:desc" json:"created_at"`
}
