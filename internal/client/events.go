package client

import (
	"context"
	"net/http"

	"btickets/internal/status"
	"btickets/models"
)

// Events returns the recent events feed.
func (c *Client) Events(ctx context.Context) ([]models.Event, error) {
	var reply struct {
		RecentEvents []models.Event `json:"recentEvents"`
	}
	err := c.do(ctx, &apiCall{
		op:       "get_events",
		method:   http.MethodGet,
		path:     "/event/recents",
		out:      &reply,
		fallback: "Loading failed",
	})
	if err != nil {
		return nil, err
	}
	return reply.RecentEvents, nil
}

// PopularEvents returns the most-favorited events.
func (c *Client) PopularEvents(ctx context.Context) ([]models.Event, error) {
	var reply struct {
		Data []models.Event `json:"data"`
	}
	err := c.do(ctx, &apiCall{
		op:       "get_events_popular",
		method:   http.MethodGet,
		path:     "/favorites/popular",
		out:      &reply,
		fallback: "Loading failed",
	})
	if err != nil {
		return nil, err
	}
	return reply.Data, nil
}

// EventByID returns one event, or status.ErrEventNotFound.
func (c *Client) EventByID(ctx context.Context, id string) (*models.Event, error) {
	var reply struct {
		Data models.Event `json:"data"`
	}
	err := c.do(ctx, &apiCall{
		op:       "get_event_by_id",
		method:   http.MethodGet,
		path:     "/events/" + id,
		out:      &reply,
		notFound: status.ErrEventNotFound,
		fallback: "Loading failed",
	})
	if err != nil {
		return nil, err
	}
	return &reply.Data, nil
}

// Categories derives the category list from the recent events feed,
// deduplicated by category id in first-appearance order. With unchanged
// upstream data the result is stable across calls.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	events, err := c.Events(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(events))
	var categories []models.Category
	for _, e := range events {
		if e.Category.ID == "" {
			continue
		}
		if _, ok := seen[e.Category.ID]; ok {
			continue
		}
		seen[e.Category.ID] = struct{}{}
		categories = append(categories, e.Category)
	}
	return categories, nil
}
