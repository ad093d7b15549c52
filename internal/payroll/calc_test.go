package payroll_test

import (
	"testing"

	"github.com/CASADINKE/eiffagerh-sub000/internal/payroll"
	payrollerrors "github.com/CASADINKE/eiffagerh-sub000/internal/payroll/errors"

	"github.com/stretchr/testify/assert"
)

func TestGrossComponents_Total(t *testing.T) {
	g := payroll.GrossComponents{
		BaseSalary:            300000,
		OverSalary:            50000,
		DisplacementAllowance: 45000,
		TransportAllowance:    30000,
	}

	total, err := g.Total()

	assert.NoError(t, err)
	assert.Equal(t, int64(425000), total)
}

func TestGrossComponents_Total_Negative(t *testing.T) {
	g := payroll.GrossComponents{BaseSalary: 300000, TransportAllowance: -1}

	_, err := g.Total()

	assert.ErrorIs(t, err, payrollerrors.ErrNegativeComponent)
}

func TestDeductionComponents_Total(t *testing.T) {
	d := payroll.DeductionComponents{
		IncomeTax:           42591,
		PensionContribution: 22100,
		MinimumLevy:         400,
	}

	total, err := d.Total()

	assert.NoError(t, err)
	assert.Equal(t, int64(65091), total)
}

func TestDeductionComponents_Total_Negative(t *testing.T) {
	d := payroll.DeductionComponents{IncomeTax: -42591}

	_, err := d.Total()

	assert.ErrorIs(t, err, payrollerrors.ErrNegativeComponent)
}

func TestComputeNetPayable(t *testing.T) {
	net, err := payroll.ComputeNetPayable(425000, 65091)

	assert.NoError(t, err)
	assert.Equal(t, int64(359909), net)
}

func TestComputeNetPayable_NegativeRejected(t *testing.T) {
	_, err := payroll.ComputeNetPayable(100000, 100001)

	assert.ErrorIs(t, err, payrollerrors.ErrNegativeNetPayable)
}

func TestComputeNetPayable_ZeroAllowed(t *testing.T) {
	net, err := payroll.ComputeNetPayable(100000, 100000)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), net)
}
