package models

type TicketStatus string

const (
	TicketActive  TicketStatus = "active"
	TicketUsed    TicketStatus = "used"
	TicketExpired TicketStatus = "expired"
)

// Ticket is proof of purchase for one event. The event is a denormalized
// copy taken at purchase time; status transitions are server-driven.
type Ticket struct {
	ID           string       `json:"id"`
	Event        Event        `json:"event"`
	Status       TicketStatus `json:"status"`
	PurchaseDate string       `json:"purchaseDate"`
	QRCode       string       `json:"qrCode"`
}
