package events

import "time"

const PayslipPaidTopic = "hr.payroll.payslip.paid.v1"

// PayslipPaidEvent is published through the outbox when a payslip reaches
// PAID. The document consumer picks it up to render the printable payslip.
type PayslipPaidEvent struct {
	EventType     string    `json:"event_type"`
	PayslipID     string    `json:"payslip_id"`
	CompanyID     string    `json:"company_id"`
	PaidBy        string    `json:"paid_by"`
	PaymentMethod string    `json:"payment_method"`
	OccurredAt    time.Time `json:"occurred_at"`
}
