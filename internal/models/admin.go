package models

import "time"

type Admin struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	// NotificationEmail is where booking/cancellation copies go; defaults to
	// Email at signup when not provided.
	NotificationEmail string `gorm:"size:100;not null" json:"notification_email"`

	// Slug is the public identifier in booking links (/public/:slug/...).
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
