package models

import "time"

// CancelledAppointment is the terminal copy an appointment migrates into on
// cancellation. It keeps the original primary key and page linkage and is
// never updated afterwards.
type CancelledAppointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AdminID uint  `gorm:"index;not null" json:"admin_id"`
	Admin   Admin `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Kept as a plain column: the page may be deleted after the fact and the
	// history row must survive it.
	BookingPageID *uint `json:"booking_page_id"`

	StartTime   time.Time `gorm:"not null" json:"start_time"`
	ClientName  string    `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string    `gorm:"size:100;not null" json:"client_email"`
	Details     string    `gorm:"type:text" json:"details"`

	CancelledAt time.Time `gorm:"not null" json:"cancelled_at"`
}
