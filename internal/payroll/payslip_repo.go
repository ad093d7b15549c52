package payroll

import (
	"context"
	"database/sql"
	"time"

	payrollerrors "github.com/CASADINKE/eiffagerh-sub000/internal/payroll/errors"
	"github.com/CASADINKE/eiffagerh-sub000/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, payslip *Payslip) error
	FindAllByCompany(ctx context.Context, companyID string, status string, period *time.Time) ([]Payslip, error)
	FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]Payslip, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Payslip, error)
	Update(ctx context.Context, payslip *Payslip) error
	Delete(ctx context.Context, companyID string, id string) error
	EmployeeBelongsToCompany(ctx context.Context, companyID string, employeeID string) (bool, error)
	ExistsForPeriod(ctx context.Context, companyID, employeeID string, period time.Time, excludeID *string) (bool, error)
	SetDocument(ctx context.Context, id string, url string, generatedAt time.Time) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, payslip *Payslip) error {
	return r.db.WithContext(ctx).Create(payslip).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, status string, period *time.Time) ([]Payslip, error) {
	db := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee")
	if status != "" {
		db = db.Where("status = ?", status)
	}
	if period != nil {
		db = db.Where("period = ?", *period)
	}

	var payslips []Payslip
	err := db.Order("period DESC, created_at DESC").Find(&payslips).Error
	return payslips, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, companyID, employeeID string) ([]Payslip, error) {
	var payslips []Payslip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Order("period DESC").
		Find(&payslips).Error
	return payslips, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Payslip, error) {
	var payslip Payslip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		First(&payslip, "id = ?", id).Error
	return &payslip, err
}

// Update persists the full record guarded by the optimistic version check.
// Zero affected rows on a record the caller just loaded means another
// writer got there first.
func (r *repository) Update(ctx context.Context, payslip *Payslip) error {
	res := r.db.WithContext(ctx).
		Model(&Payslip{}).
		Where("id = ? AND version = ?", payslip.ID, payslip.Version).
		Updates(map[string]any{
			"employee_id":            payslip.EmployeeID,
			"period":                 payslip.Period,
			"base_salary":            payslip.BaseSalary,
			"over_salary":            payslip.OverSalary,
			"displacement_allowance": payslip.DisplacementAllowance,
			"transport_allowance":    payslip.TransportAllowance,
			"income_tax":             payslip.IncomeTax,
			"pension_contribution":   payslip.PensionContribution,
			"minimum_levy":           payslip.MinimumLevy,
			"gross_total":            payslip.GrossTotal,
			"deduction_total":        payslip.DeductionTotal,
			"net_payable":            payslip.NetPayable,
			"status":                 payslip.Status,
			"payment_method":         payslip.PaymentMethod,
			"payment_date":           payslip.PaymentDate,
			"validated_by":           payslip.ValidatedBy,
			"validated_at":           payslip.ValidatedAt,
			"paid_by":                payslip.PaidBy,
			"paid_at":                payslip.PaidAt,
			"version":                payslip.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return payrollerrors.ErrConcurrentModification
	}
	payslip.Version++
	return nil
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Payslip{}, "id = ?", id).Error
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, companyID string, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Scopes(tenant.Scope(companyID)).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ExistsForPeriod(
	ctx context.Context,
	companyID, employeeID string,
	period time.Time,
	excludeID *string,
) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&Payslip{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("period = ?", period)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) SetDocument(ctx context.Context, id string, url string, generatedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Payslip{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"document_url":          url,
			"document_generated_at": generatedAt,
		}).Error
}
