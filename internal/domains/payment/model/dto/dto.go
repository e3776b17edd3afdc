package dto

import (
	"time"

	"innkeep/internal/domains/payment/model"
	"innkeep/shared"
	"innkeep/shared/constant"
	gModel "innkeep/shared/model"
	"innkeep/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreatePaymentRequest struct {
	BookingID     string          `json:"booking_id"     validate:"required,uuid"`
	Amount        decimal.Decimal `json:"amount"         validate:"required"`
	Method        string          `json:"method"         validate:"required,oneof='Credit Card' 'Debit Card' Cash 'Online Transfer'"`
	TransactionID *string         `json:"transaction_id" validate:"omitempty,max=100"`
}

// ToModel derives the payment status from the transaction reference. A
// payment without one stays pending until the gateway confirms it.
func (c *CreatePaymentRequest) ToModel(user string) model.Payment {
	status := model.StatusPending

	var paidAt *time.Time

	if c.TransactionID != nil && *c.TransactionID != constant.Empty {
		status = model.StatusCompleted
		now := timezone.Now()
		paidAt = &now
	}

	return model.Payment{
		ID:            uuid.NewString(),
		BookingID:     c.BookingID,
		Amount:        c.Amount,
		Method:        c.Method,
		Status:        status,
		TransactionID: c.TransactionID,
		PaidAt:        paidAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePaymentRequest struct {
	Status        *string `json:"status"         db:"status"         validate:"omitempty,oneof=Completed Pending Failed Refunded"`
	TransactionID *string `json:"transaction_id" db:"transaction_id" validate:"omitempty,max=100"`
}

type PaymentResponse struct {
	ID            string          `json:"id"`
	BookingID     string          `json:"booking_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Status        string          `json:"status"`
	TransactionID *string         `json:"transaction_id,omitempty"`
	PaidAt        *string         `json:"paid_at,omitempty"`
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.Amount = model.Amount
	r.Method = model.Method
	r.Status = model.Status
	r.TransactionID = model.TransactionID

	if model.PaidAt != nil {
		paidAt := model.PaidAt.Format(constant.DateFormat)
		r.PaidAt = &paidAt
	}
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalData int               `json:"total_data"`
	TotalPage int               `json:"total_page"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Payments = make([]PaymentResponse, len(models))

	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
