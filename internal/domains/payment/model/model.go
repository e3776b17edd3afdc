package model

import (
	"time"

	"innkeep/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldAmount        = "amount"
	FieldMethod        = "method"
	FieldStatus        = "status"
	FieldTransactionID = "transaction_id"
	FieldPaidAt        = "paid_at"
)

const (
	StatusCompleted = "Completed"
	StatusPending   = "Pending"
	StatusFailed    = "Failed"
	StatusRefunded  = "Refunded"
)

const (
	MethodCreditCard     = "Credit Card"
	MethodDebitCard      = "Debit Card"
	MethodCash           = "Cash"
	MethodOnlineTransfer = "Online Transfer"
)

type Payment struct {
	ID            string          `db:"id"`
	BookingID     string          `db:"booking_id"`
	Amount        decimal.Decimal `db:"amount"`
	Method        string          `db:"method"`
	Status        string          `db:"status"`
	TransactionID *string         `db:"transaction_id"`
	PaidAt        *time.Time      `db:"paid_at"`
	model.Metadata
}
