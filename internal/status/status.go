package status

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized         = errors.New("auth: unauthorized")
	ErrEventNotFound        = errors.New("event: event not found")
	ErrTicketNotFound       = errors.New("ticket: ticket not found")
	ErrWishlistItemNotFound = errors.New("wishlist: wishlist item not found")
)

// APIError carries the server-provided message for a failed call, or the
// operation's fallback string when the response body had none.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.StatusCode)
}
