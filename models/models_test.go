package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrice_DecimalJSONRoundTrip(t *testing.T) {
	price := Price{
		ID:       "1-std",
		Category: "standard",
		Amount:   decimal.RequireFromString("89.99"),
		Currency: "USD",
	}

	jsonData, err := json.Marshal(price)
	require.NoError(t, err)
	assert.Contains(t, string(jsonData), `"amount":"89.99"`)

	var unmarshaled Price
	require.NoError(t, json.Unmarshal(jsonData, &unmarshaled))
	assert.True(t, price.Amount.Equal(unmarshaled.Amount))
	assert.Equal(t, "USD", unmarshaled.Currency)
}

func TestEvent_PriceFor(t *testing.T) {
	event := Event{
		ID: "1",
		Prices: []Price{
			{ID: "1-std", Category: "standard", Amount: decimal.RequireFromString("89.99"), Currency: "USD"},
			{ID: "1-vip", Category: "vip", Amount: decimal.RequireFromString("249.99"), Currency: "USD"},
		},
	}

	vip := event.PriceFor("vip")
	require.NotNil(t, vip)
	assert.Equal(t, "1-vip", vip.ID)

	assert.Nil(t, event.PriceFor("backstage"))
}

func TestPaymentForm_Validate(t *testing.T) {
	card := &CardDetails{
		Number: "4242424242424242",
		Name:   "Demo User",
		Expiry: "12/27",
		CVV:    "123",
	}

	tests := []struct {
		name    string
		form    PaymentForm
		wantErr string
	}{
		{
			name: "valid card payment",
			form: PaymentForm{
				EventID:     "1",
				Quantity:    1,
				TotalAmount: decimal.RequireFromString("89.99"),
				Method:      MethodCard,
				Card:        card,
			},
		},
		{
			name: "valid mobile payment",
			form: PaymentForm{
				EventID:      "1",
				Quantity:     2,
				TotalAmount:  decimal.RequireFromString("179.98"),
				Method:       MethodMobile,
				MobileNumber: "+15550100",
			},
		},
		{
			name:    "missing event id",
			form:    PaymentForm{Quantity: 1, Method: MethodCard, Card: card},
			wantErr: "event id is required",
		},
		{
			name:    "zero quantity",
			form:    PaymentForm{EventID: "1", Method: MethodCard, Card: card},
			wantErr: "quantity must be at least 1",
		},
		{
			name: "negative total",
			form: PaymentForm{
				EventID:     "1",
				Quantity:    1,
				TotalAmount: decimal.RequireFromString("-1"),
				Method:      MethodCard,
				Card:        card,
			},
			wantErr: "total amount must not be negative",
		},
		{
			name: "card method without card details",
			form: PaymentForm{
				EventID:  "1",
				Quantity: 1,
				Method:   MethodCard,
			},
			wantErr: "incomplete card details",
		},
		{
			name: "card method with partial card details",
			form: PaymentForm{
				EventID:  "1",
				Quantity: 1,
				Method:   MethodCard,
				Card:     &CardDetails{Number: "4242424242424242"},
			},
			wantErr: "incomplete card details",
		},
		{
			name: "mobile method without number",
			form: PaymentForm{
				EventID:  "1",
				Quantity: 1,
				Method:   MethodMobile,
			},
			wantErr: "mobile number is required",
		},
		{
			name: "unsupported method",
			form: PaymentForm{
				EventID:  "1",
				Quantity: 1,
				Method:   "barter",
			},
			wantErr: "unsupported payment method",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestTicket_ValidStatuses(t *testing.T) {
	validStatuses := []TicketStatus{TicketActive, TicketUsed, TicketExpired}

	for _, status := range validStatuses {
		ticket := Ticket{
			ID:     "test-ticket",
			Status: status,
		}

		jsonData, err := json.Marshal(ticket)
		require.NoError(t, err)

		var unmarshaled Ticket
		require.NoError(t, json.Unmarshal(jsonData, &unmarshaled))
		assert.Equal(t, status, unmarshaled.Status)
	}
}
