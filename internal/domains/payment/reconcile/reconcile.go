// Package reconcile settles recorded payments against a booking's total.
package reconcile

import (
	paymentModel "innkeep/internal/domains/payment/model"

	"github.com/shopspring/decimal"
)

// Policy selects which payments count toward the paid total.
type Policy int

const (
	// PolicyAll counts every recorded payment regardless of status.
	PolicyAll Policy = iota
	// PolicyCompletedOnly counts only payments marked Completed.
	PolicyCompletedOnly
)

const (
	StatusPaid    = "Paid"
	StatusPartial = "Partial"
	StatusUnpaid  = "Unpaid"
)

// Summary is the settlement position of a single booking.
type Summary struct {
	TotalPaid decimal.Decimal `json:"total_paid"`
	Balance   decimal.Decimal `json:"balance"`
	Status    string          `json:"status"`
}

// Reconcile computes how much of the booking total the given payments
// cover. The balance is total minus paid and goes negative on overpayment.
func Reconcile(total decimal.Decimal, payments []paymentModel.Payment, policy Policy) Summary {
	totalPaid := decimal.Zero

	for _, payment := range payments {
		if policy == PolicyCompletedOnly && payment.Status != paymentModel.StatusCompleted {
			continue
		}

		totalPaid = totalPaid.Add(payment.Amount)
	}

	balance := total.Sub(totalPaid)

	status := StatusUnpaid

	switch {
	case totalPaid.GreaterThanOrEqual(total) && total.IsPositive():
		status = StatusPaid
	case totalPaid.IsPositive():
		status = StatusPartial
	}

	return Summary{
		TotalPaid: totalPaid,
		Balance:   balance,
		Status:    status,
	}
}
