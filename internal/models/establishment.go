package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	EstablishmentHotel     = "hotel"
	EstablishmentHouse     = "house"
	EstablishmentKitnet    = "kitnet"
	EstablishmentApartment = "apartment"
)

type Establishment struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	OwnerID string `gorm:"type:uuid;not null;uniqueIndex:idx_establishments_owner_name" json:"owner_id"`
	Owner   *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Type        string `gorm:"size:20;not null" json:"type"`
	Name        string `gorm:"size:120;not null;uniqueIndex:idx_establishments_owner_name" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Contact     string `gorm:"size:20" json:"contact"`

	Zipcode    string `gorm:"size:9" json:"zipcode"`
	Street     string `gorm:"size:150" json:"street"`
	Number     string `gorm:"size:20" json:"number"`
	Complement string `gorm:"size:100" json:"complement"`
	District   string `gorm:"size:100" json:"district"`
	City       string `gorm:"size:100;index" json:"city"`
	State      string `gorm:"size:2;index" json:"state"`
	Country    string `gorm:"size:2;default:'BR'" json:"country"`

	Attachment *EstablishmentAttachment `gorm:"foreignKey:EstablishmentID" json:"attachment,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Establishment) BeforeCreate(*gorm.DB) error {
	ensureID(&e.ID)
	return nil
}

// EstablishmentAttachment holds the booking window and the collections of
// an establishment. MinBookingHour is always earlier than MaxBookingHour.
type EstablishmentAttachment struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	EstablishmentID string         `gorm:"type:uuid;uniqueIndex;not null" json:"establishment_id"`
	Establishment   *Establishment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	MinBookingHour string `gorm:"size:5;check:chk_attachment_booking_window,min_booking_hour < max_booking_hour" json:"min_booking_hour"`
	MaxBookingHour string `gorm:"size:5" json:"max_booking_hour"`

	Images      []EstablishmentImage `json:"images"`
	Commodities []Commodity          `json:"commodities"`
	BookedDates []BookedDate         `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *EstablishmentAttachment) BeforeCreate(*gorm.DB) error {
	ensureID(&a.ID)
	return nil
}

type EstablishmentImage struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	EstablishmentAttachmentID string `gorm:"type:uuid;index;not null" json:"establishment_attachment_id"`

	URL       string `gorm:"size:500;not null" json:"url"`
	ObjectKey string `gorm:"size:255" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (i *EstablishmentImage) BeforeCreate(*gorm.DB) error {
	ensureID(&i.ID)
	return nil
}

type Commodity struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	EstablishmentAttachmentID string `gorm:"type:uuid;not null;uniqueIndex:idx_commodities_attachment_name" json:"establishment_attachment_id"`

	Name string `gorm:"size:100;not null;uniqueIndex:idx_commodities_attachment_name" json:"name"`
	Icon string `gorm:"size:500" json:"icon"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Commodity) BeforeCreate(*gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
