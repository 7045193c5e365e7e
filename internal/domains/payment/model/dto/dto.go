package dto

import (
	"phoenix/internal/domains/payment/model"
	"phoenix/shared"
)

type CreatePaymentRequest struct {
	Booking string  `form:"booking"        json:"booking"        validate:"required"`
	Amount  float64 `form:"amount"         json:"amount"         validate:"required,gt=0"`
	Method  string  `form:"payment_method" json:"payment_method" validate:"required,oneof=card mpesa paypal bank_transfer"`
}

// MpesaPaymentRequest starts an STK push; the backend drives the exchange
// with the payment provider and reports the eventual status.
type MpesaPaymentRequest struct {
	Booking     string `form:"booking"      json:"booking"      validate:"required"`
	PhoneNumber string `form:"phone_number" json:"phone_number" validate:"required,max=15"`
}

type PaymentsResponse struct {
	Payments  []model.Payment `json:"payments"`
	TotalData int             `json:"total_data"`
	TotalPage int             `json:"total_page"`
}

func (r *PaymentsResponse) FromPage(payments []model.Payment, totalData, limit int) {
	r.Payments = payments
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
}
