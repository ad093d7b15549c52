package payroll

type CreatePayslipRequest struct {
	EmployeeID            string `json:"employee_id" binding:"required,uuid"`
	Period                string `json:"period" binding:"required"` // YYYY-MM
	BaseSalary            int64  `json:"base_salary" binding:"required"`
	OverSalary            int64  `json:"over_salary"`
	DisplacementAllowance int64  `json:"displacement_allowance"`
	TransportAllowance    int64  `json:"transport_allowance"`
	IncomeTax             int64  `json:"income_tax"`
	PensionContribution   int64  `json:"pension_contribution"`
	MinimumLevy           int64  `json:"minimum_levy"`
}

// UpdatePayslipRequest edits the component amounts. Only accepted while the
// payslip is still PENDING; status changes go through the transition
// endpoints instead.
type UpdatePayslipRequest struct {
	Period                string `json:"period" binding:"required"`
	BaseSalary            int64  `json:"base_salary" binding:"required"`
	OverSalary            int64  `json:"over_salary"`
	DisplacementAllowance int64  `json:"displacement_allowance"`
	TransportAllowance    int64  `json:"transport_allowance"`
	IncomeTax             int64  `json:"income_tax"`
	PensionContribution   int64  `json:"pension_contribution"`
	MinimumLevy           int64  `json:"minimum_levy"`
}

type TransitionPayslipRequest struct {
	Status        string  `json:"status" binding:"required"`
	PaymentMethod *string `json:"payment_method"`
	PaymentDate   *string `json:"payment_date"` // YYYY-MM-DD, defaults to today
}

type MarkPaidRequest struct {
	PaymentMethod string  `json:"payment_method" binding:"required"`
	PaymentDate   *string `json:"payment_date"`
}

type GetPayslipsFilterRequest struct {
	Status string `form:"status"`
	Period string `form:"period"` // YYYY-MM
	Search string `form:"search"`
}

type PayslipResponse struct {
	ID                    string  `json:"id"`
	CompanyID             string  `json:"company_id"`
	EmployeeID            string  `json:"employee_id"`
	EmployeeName          string  `json:"employee_name,omitempty"`
	Reference             string  `json:"reference"`
	Period                string  `json:"period"`
	BaseSalary            int64   `json:"base_salary"`
	OverSalary            int64   `json:"over_salary"`
	DisplacementAllowance int64   `json:"displacement_allowance"`
	TransportAllowance    int64   `json:"transport_allowance"`
	IncomeTax             int64   `json:"income_tax"`
	PensionContribution   int64   `json:"pension_contribution"`
	MinimumLevy           int64   `json:"minimum_levy"`
	GrossTotal            int64   `json:"gross_total"`
	DeductionTotal        int64   `json:"deduction_total"`
	NetPayable            int64   `json:"net_payable"`
	Status                string  `json:"status"`
	PaymentMethod         *string `json:"payment_method,omitempty"`
	PaymentDate           *string `json:"payment_date,omitempty"`
	CreatedBy             string  `json:"created_by"`
	ValidatedBy           *string `json:"validated_by,omitempty"`
	ValidatedAt           *string `json:"validated_at,omitempty"`
	PaidBy                *string `json:"paid_by,omitempty"`
	PaidAt                *string `json:"paid_at,omitempty"`
	DocumentURL           *string `json:"document_url,omitempty"`
	Version               int64   `json:"version"`
}

type PayslipSummaryResponse struct {
	NetPayableByStatus map[string]int64 `json:"net_payable_by_status"`
	CountByStatus      map[string]int   `json:"count_by_status"`
}
