package payroll

import "strings"

const (
	StatusPending   = "PENDING"
	StatusValidated = "VALIDATED"
	StatusPaid      = "PAID"
)

const (
	MethodBankTransfer = "BANK_TRANSFER"
	MethodCash         = "CASH"
	MethodMobileMoney  = "MOBILE_MONEY"
)

func validStatus(s string) bool {
	switch s {
	case StatusPending, StatusValidated, StatusPaid:
		return true
	}
	return false
}

// allowedTransition is the payment state machine. PAID is terminal: once a
// payslip is paid, neither its status nor its amounts may change. The
// direct PENDING->PAID shortcut matches how small organizations operate
// (the approver doubles as payer) and is closed off by strict mode.
func allowedTransition(from, to string, strict bool) bool {
	if from == to {
		return false
	}

	switch from {
	case StatusPending:
		if to == StatusValidated {
			return true
		}
		return to == StatusPaid && !strict
	case StatusValidated:
		return to == StatusPaid
	default:
		return false
	}
}

// normalizePaymentMethod maps user input onto the canonical method set.
// The legacy French labels are still accepted from older clients.
func normalizePaymentMethod(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "bank_transfer", "virement", "virement bancaire":
		return MethodBankTransfer, true
	case "cash", "espèces", "especes":
		return MethodCash, true
	case "mobile_money", "mobile money":
		return MethodMobileMoney, true
	}
	return "", false
}
