package payroll

import (
	payrollerrors "github.com/CASADINKE/eiffagerh-sub000/internal/payroll/errors"
)

// GrossComponents are the earning parts of a payslip.
type GrossComponents struct {
	BaseSalary            int64
	OverSalary            int64
	DisplacementAllowance int64
	TransportAllowance    int64
}

// DeductionComponents are the withholding parts of a payslip.
type DeductionComponents struct {
	IncomeTax           int64
	PensionContribution int64
	MinimumLevy         int64
}

// Total sums the gross components. A negative component is a validation
// error, never silently clamped.
func (g GrossComponents) Total() (int64, error) {
	for _, v := range []int64{g.BaseSalary, g.OverSalary, g.DisplacementAllowance, g.TransportAllowance} {
		if v < 0 {
			return 0, payrollerrors.ErrNegativeComponent
		}
	}
	return g.BaseSalary + g.OverSalary + g.DisplacementAllowance + g.TransportAllowance, nil
}

// Total sums the deduction components with the same non-negativity contract.
func (d DeductionComponents) Total() (int64, error) {
	for _, v := range []int64{d.IncomeTax, d.PensionContribution, d.MinimumLevy} {
		if v < 0 {
			return 0, payrollerrors.ErrNegativeComponent
		}
	}
	return d.IncomeTax + d.PensionContribution + d.MinimumLevy, nil
}

// ComputeNetPayable derives the amount due to the employee. Deductions
// exceeding gross are rejected: a negative net would mean the employee owes
// the company, which this payroll does not model.
func ComputeNetPayable(gross, deductions int64) (int64, error) {
	net := gross - deductions
	if net < 0 {
		return 0, payrollerrors.ErrNegativeNetPayable
	}
	return net, nil
}

// computeTotals runs the full calculation used on every create and update.
func computeTotals(g GrossComponents, d DeductionComponents) (gross, deduction, net int64, err error) {
	gross, err = g.Total()
	if err != nil {
		return 0, 0, 0, err
	}
	deduction, err = d.Total()
	if err != nil {
		return 0, 0, 0, err
	}
	net, err = ComputeNetPayable(gross, deduction)
	if err != nil {
		return 0, 0, 0, err
	}
	return gross, deduction, net, nil
}
