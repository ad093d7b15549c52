package payroll

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payslip is the payroll record for one employee and one pay period.
// Monetary fields are whole CFA francs (the currency has no sub-unit),
// stored as int64 to keep the arithmetic exact.
type Payslip struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID    `gorm:"type:uuid;not null;index:idx_payslips_company_status"`
	EmployeeID uuid.UUID    `gorm:"type:uuid;not null;index:idx_payslips_employee_period,unique"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`

	// Human-facing reference, e.g. PAY-2024-000042. Assigned from the
	// company counter at creation.
	Reference string `gorm:"type:varchar(30);not null"`

	// Period is the first day of the pay month.
	Period time.Time `gorm:"type:date;not null;index:idx_payslips_employee_period,unique"`

	// Gross components
	BaseSalary            int64 `gorm:"type:bigint;not null;default:0"`
	OverSalary            int64 `gorm:"type:bigint;not null;default:0"`
	DisplacementAllowance int64 `gorm:"type:bigint;not null;default:0"`
	TransportAllowance    int64 `gorm:"type:bigint;not null;default:0"`

	// Deduction components
	IncomeTax           int64 `gorm:"type:bigint;not null;default:0"`
	PensionContribution int64 `gorm:"type:bigint;not null;default:0"`
	MinimumLevy         int64 `gorm:"type:bigint;not null;default:0"`

	// Derived totals, always recomputed server-side, never client input.
	GrossTotal     int64 `gorm:"type:bigint;not null;default:0"`
	DeductionTotal int64 `gorm:"type:bigint;not null;default:0"`
	NetPayable     int64 `gorm:"type:bigint;not null;default:0"`

	Status string `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_payslips_company_status"`

	// Set together on the PAID transition, null on every other status.
	PaymentMethod *string    `gorm:"type:varchar(20)"`
	PaymentDate   *time.Time `gorm:"type:date"`

	// Workflow & audit
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null"`
	ValidatedBy *uuid.UUID `gorm:"type:uuid"`
	ValidatedAt *time.Time
	PaidBy      *uuid.UUID `gorm:"type:uuid"`
	PaidAt      *time.Time `gorm:"index"`

	// Document generated asynchronously by the payslip consumer.
	DocumentURL         *string
	DocumentGeneratedAt *time.Time

	// Version guards concurrent updates: a stale write is rejected instead
	// of silently winning at the field level.
	Version int64 `gorm:"type:bigint;not null;default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// EmployeeRef is a read-only projection of the employees table used for
// eager loading the display name onto a payslip.
type EmployeeRef struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"column:full_name"`
	Matricule string    `gorm:"column:matricule"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
