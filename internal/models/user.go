package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Contact      string `gorm:"size:20" json:"contact"`

	Zipcode    string `gorm:"size:9" json:"zipcode"`
	Street     string `gorm:"size:150" json:"street"`
	Number     string `gorm:"size:20" json:"number"`
	Complement string `gorm:"size:100" json:"complement"`
	District   string `gorm:"size:100" json:"district"`
	City       string `gorm:"size:100" json:"city"`
	State      string `gorm:"size:2" json:"state"`
	Country    string `gorm:"size:2;default:'BR'" json:"country"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	ensureID(&u.ID)
	return nil
}
