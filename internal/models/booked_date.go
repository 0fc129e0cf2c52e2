package models

import (
	"time"

	"gorm.io/gorm"
)

// BookedDate is a reservation of one calendar date, stored as a date column
// at midnight UTC. The unique index keeps a single booking per attachment and
// date even under concurrent inserts.
type BookedDate struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	EstablishmentAttachmentID string                   `gorm:"type:uuid;not null;uniqueIndex:idx_booked_dates_attachment_date" json:"establishment_attachment_id"`
	EstablishmentAttachment   *EstablishmentAttachment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	UserID string `gorm:"type:uuid;index;not null" json:"user_id"`
	User   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	BookedDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_booked_dates_attachment_date" json:"booked_date"`

	CreatedAt time.Time `json:"created_at"`
}

func (b *BookedDate) BeforeCreate(*gorm.DB) error {
	ensureID(&b.ID)
	return nil
}
