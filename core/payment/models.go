package payment

import "scolarium/core"

// NewPayment is the record-payment input. Amount must be a positive finite
// number; nothing happens otherwise.
type NewPayment struct {
	StudentID string           `json:"studentId" validate:"required"`
	Amount    float64          `json:"amount" validate:"required,gt=0,finite"`
	Type      core.PaymentType `json:"type" validate:"required,oneof=Cash MobileMoney BankTransfer"`
}
