package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	MethodCard   = "card"
	MethodMobile = "mobile"
)

type CardDetails struct {
	Number string `json:"cardNumber"`
	Name   string `json:"cardName"`
	Expiry string `json:"cardExpiry"`
	CVV    string `json:"cardCvv"`
}

// PaymentForm is the payload for POST /payments/process. Exactly one of
// Card or MobileNumber is required depending on Method.
type PaymentForm struct {
	EventID       string          `json:"eventId"`
	PriceCategory string          `json:"priceCategory"`
	Quantity      int             `json:"quantity"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Method        string          `json:"method"`
	Card          *CardDetails    `json:"card,omitempty"`
	MobileNumber  string          `json:"mobileNumber,omitempty"`
}

func (f *PaymentForm) Validate() error {
	if f.EventID == "" {
		return errors.New("payment: event id is required")
	}
	if f.Quantity < 1 {
		return errors.New("payment: quantity must be at least 1")
	}
	if f.TotalAmount.IsNegative() {
		return errors.New("payment: total amount must not be negative")
	}

	switch f.Method {
	case MethodCard:
		if f.Card == nil || f.Card.Number == "" || f.Card.Name == "" || f.Card.Expiry == "" || f.Card.CVV == "" {
			return errors.New("payment: incomplete card details")
		}
	case MethodMobile:
		if f.MobileNumber == "" {
			return errors.New("payment: mobile number is required")
		}
	default:
		return errors.New("payment: unsupported payment method")
	}

	return nil
}

// PaymentReceipt is the success envelope of POST /payments/process.
type PaymentReceipt struct {
	Success  bool   `json:"success"`
	TicketID string `json:"ticketId"`
}
