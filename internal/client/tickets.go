package client

import (
	"context"
	"net/http"

	"btickets/internal/status"
	"btickets/models"
)

// Tickets returns the authenticated user's purchased tickets.
func (c *Client) Tickets(ctx context.Context) ([]models.Ticket, error) {
	var reply struct {
		Data []models.Ticket `json:"data"`
	}
	err := c.do(ctx, &apiCall{
		op:       "get_user_tickets",
		method:   http.MethodGet,
		path:     "/tickets",
		out:      &reply,
		fallback: "Loading failed",
	})
	if err != nil {
		return nil, err
	}
	return reply.Data, nil
}

// TicketByID returns one ticket, or status.ErrTicketNotFound.
func (c *Client) TicketByID(ctx context.Context, id string) (*models.Ticket, error) {
	var reply struct {
		Data models.Ticket `json:"data"`
	}
	err := c.do(ctx, &apiCall{
		op:       "get_ticket_by_id",
		method:   http.MethodGet,
		path:     "/tickets/" + id,
		out:      &reply,
		notFound: status.ErrTicketNotFound,
		fallback: "Loading failed",
	})
	if err != nil {
		return nil, err
	}
	return &reply.Data, nil
}
