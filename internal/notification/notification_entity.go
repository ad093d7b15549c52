package notification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification is one in-app message for one recipient. Fan-out writes a row
// per recipient rather than sharing one row across readers.
type Notification struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_recipient"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_recipient"`

	Type  string `gorm:"type:varchar(40);not null"`
	Title string `gorm:"type:varchar(150);not null"`
	Body  string `gorm:"type:text"`

	// ReferenceID points at the record the notification is about, e.g. the
	// leave request id.
	ReferenceID *uuid.UUID `gorm:"type:uuid"`

	ReadAt    *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

const TypeLeaveRequested = "LEAVE_REQUESTED"
