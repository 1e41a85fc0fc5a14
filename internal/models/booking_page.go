package models

import "time"

type BookingPage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AdminID uint  `gorm:"uniqueIndex:idx_admin_page_slug;not null" json:"admin_id"`
	Admin   Admin `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Slug  string `gorm:"size:100;uniqueIndex:idx_admin_page_slug;not null" json:"slug"`
	Title string `gorm:"size:100" json:"title"`

	Fields []CustomFieldDefinition `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"fields"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CustomFieldDefinition struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	BookingPageID uint `gorm:"index;not null" json:"booking_page_id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Label    string `gorm:"size:100;not null" json:"label"`
	Type     string `gorm:"size:20;default:'text'" json:"type"`
	Required bool   `gorm:"default:false" json:"required"`
	Position int    `json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
