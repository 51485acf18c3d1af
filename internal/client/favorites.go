package client

import (
	"context"
	"net/http"

	"btickets/internal/status"
	"btickets/models"
)

// Favorites returns the authenticated user's favorited events.
func (c *Client) Favorites(ctx context.Context) ([]models.Event, error) {
	var reply struct {
		Data []models.Event `json:"data"`
	}
	err := c.do(ctx, &apiCall{
		op:       "get_favorites",
		method:   http.MethodGet,
		path:     "/favorites/list",
		out:      &reply,
		fallback: "Loading failed",
	})
	if err != nil {
		return nil, err
	}
	return reply.Data, nil
}

// ToggleFavorite flips the favorite flag for an event and returns the new
// state. currentlyFavorite is the state before the call and selects the
// add or remove endpoint.
//
// The server's echoed event is the source of truth for the returned flag;
// the negated input is used only when the echo omits the event. The mobile
// app discarded the echo entirely, which let client and server desync on
// races or partial failures.
func (c *Client) ToggleFavorite(ctx context.Context, eventID string, currentlyFavorite bool) (bool, error) {
	path := "/favorites/add/" + eventID
	if currentlyFavorite {
		path = "/favorites/remove/" + eventID
	}

	var reply struct {
		Data struct {
			Event *models.Event `json:"event"`
		} `json:"data"`
	}
	err := c.do(ctx, &apiCall{
		op:       "toggle_favorite",
		method:   http.MethodPost,
		path:     path,
		out:      &reply,
		notFound: status.ErrEventNotFound,
		fallback: "Loading failed",
	})
	if err != nil {
		return currentlyFavorite, err
	}

	if reply.Data.Event != nil {
		return reply.Data.Event.IsFavorite, nil
	}
	return !currentlyFavorite, nil
}
