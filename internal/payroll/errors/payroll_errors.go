package payrollerrors

import (
	"net/http"

	"github.com/CASADINKE/eiffagerh-sub000/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriodFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid period format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this company",
		http.StatusBadRequest,
	)
	ErrPayslipPeriodExists = apperror.New(
		apperror.CodeConflict,
		"a payslip already exists for this employee and period",
		http.StatusConflict,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found",
		http.StatusNotFound,
	)
	ErrNegativeComponent = apperror.New(
		apperror.CodeInvalidInput,
		"salary component values cannot be negative",
		http.StatusBadRequest,
	)
	ErrNegativeNetPayable = apperror.New(
		apperror.CodeInvalidInput,
		"deductions exceed gross total, net payable would be negative",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payslip status",
		http.StatusBadRequest,
	)
	ErrPaymentMethodRequired = apperror.New(
		apperror.CodeInvalidInput,
		"payment_method is required when marking a payslip as paid",
		http.StatusBadRequest,
	)
	ErrInvalidPaymentMethod = apperror.New(
		apperror.CodeInvalidInput,
		"payment_method must be one of BANK_TRANSFER, CASH, MOBILE_MONEY",
		http.StatusBadRequest,
	)
	ErrUpdateOnlyPending = apperror.New(
		apperror.CodeInvalidState,
		"payslip amounts can only be edited while status is PENDING",
		http.StatusBadRequest,
	)
	ErrDeletePaidForbidden = apperror.New(
		apperror.CodeInvalidState,
		"a paid payslip cannot be deleted",
		http.StatusBadRequest,
	)
	ErrConcurrentModification = apperror.New(
		apperror.CodeConflict,
		"payslip was modified by another request, reload and retry",
		http.StatusConflict,
	)
	ErrDocumentNotGenerated = apperror.New(
		apperror.CodeNotFound,
		"payslip document is not generated yet",
		http.StatusNotFound,
	)
	ErrTimedOut = apperror.New(
		apperror.CodeTimeout,
		"the operation did not complete in time",
		http.StatusGatewayTimeout,
	)
)

// InvalidTransition reports the exact rejected (from, to) pair so the
// caller can tell a workflow mistake from bad data.
func InvalidTransition(from, to string) *apperror.AppError {
	return apperror.Newf(
		apperror.CodeInvalidState,
		http.StatusBadRequest,
		"payslip status cannot change from %s to %s", from, to,
	)
}
