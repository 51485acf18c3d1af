package client

import (
	"context"
	"fmt"
	"net/http"

	"btickets/models"
)

// ProcessPayment submits the payment form and returns the receipt with
// the id of the issued ticket. The form is validated client-side before
// any network call.
func (c *Client) ProcessPayment(ctx context.Context, form *models.PaymentForm) (*models.PaymentReceipt, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("process payment: %w", err)
	}

	var reply models.PaymentReceipt
	err := c.do(ctx, &apiCall{
		op:       "process_payment",
		method:   http.MethodPost,
		path:     "/payments/process",
		body:     form,
		out:      &reply,
		fallback: "Payment failed",
	})
	if err != nil {
		return nil, err
	}
	return &reply, nil
}
