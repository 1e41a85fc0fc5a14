package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AdminID uint  `gorm:"uniqueIndex:idx_admin_start;not null" json:"admin_id"`
	Admin   Admin `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// Nullable: private appointments created by the admin have no page.
	BookingPageID *uint        `json:"booking_page_id"`
	BookingPage   *BookingPage `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"booking_page,omitempty"`

	// StartTime is always an absolute UTC instant; uniqueness per admin is
	// enforced transactionally and backstopped by this composite index.
	StartTime time.Time `gorm:"uniqueIndex:idx_admin_start;not null" json:"start_time"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:100;not null" json:"client_email"`
	Details     string `gorm:"type:text" json:"details"`

	FieldValues []CustomFieldValue `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"field_values,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CustomFieldValue struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AppointmentID uint `gorm:"index;not null" json:"appointment_id"`

	FieldDefinitionID uint                  `gorm:"not null" json:"field_definition_id"`
	FieldDefinition   CustomFieldDefinition `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"field_definition,omitempty"`

	Value string `gorm:"type:text" json:"value"`

	CreatedAt time.Time `json:"created_at"`
}
