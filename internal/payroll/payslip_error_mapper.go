package payroll

import (
	"context"
	"errors"
	"strings"

	payrollerrors "github.com/CASADINKE/eiffagerh-sub000/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError converts driver-level failures into the typed errors
// the handlers know how to render.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayslipNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return payrollerrors.ErrTimedOut
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_payslips_employee_period" {
			return payrollerrors.ErrPayslipPeriodExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "idx_payslips_employee_period") {
		return payrollerrors.ErrPayslipPeriodExists
	}

	return err
}
