package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee is the staff directory row. This service reads it for payroll
// checks and notification fan-out; onboarding lives in a separate system.
type Employee struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`

	Matricule string `gorm:"type:varchar(30);not null"`
	FullName  string `gorm:"column:full_name;not null"`
	Email     string `gorm:"uniqueIndex"`
	Poste     string `gorm:"type:varchar(100)"`

	// Role drives RBAC: ADMIN, MANAGER or EMPLOYEE.
	Role string `gorm:"type:varchar(20);not null;default:'EMPLOYEE';index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
