package models

import "time"

type MessageKind string

const (
	KindReminder MessageKind = "reminder"
	KindThankYou MessageKind = "thank_you"
)

type MessageStatus string

const (
	StatusPending MessageStatus = "pending"
	StatusSent    MessageStatus = "sent"
	StatusFailed  MessageStatus = "failed"
)

type ScheduledMessage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Plain column, no FK constraint: cancellation deletes the appointment
	// row and leaves its scheduled messages behind. The due queries join on
	// live appointments, so orphaned rows never fire.
	AppointmentID uint `gorm:"index;not null" json:"appointment_id"`

	Kind   MessageKind `gorm:"size:20;index;not null" json:"kind"`
	SendAt time.Time   `gorm:"index;not null" json:"send_at"`

	// Optional body override; the notifier falls back to a default template.
	Message string `gorm:"type:text" json:"message"`

	Status MessageStatus `gorm:"size:20;default:'pending';index" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
