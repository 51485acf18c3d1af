package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btickets/internal/status"
)

func TestToggleFavorite_AddWhenNotCurrentlyFavorite(t *testing.T) {
	c, seen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"event":{"id":"1","isFavorite":true}}}`))
	})

	favorite, err := c.ToggleFavorite(context.Background(), "1", false)
	require.NoError(t, err)
	assert.True(t, favorite)

	requests := seen()
	require.Len(t, requests, 1)
	assert.Equal(t, "/favorites/add/1", requests[0].URL.Path)
	assert.Equal(t, http.MethodPost, requests[0].Method)
}

func TestToggleFavorite_RemoveWhenCurrentlyFavorite(t *testing.T) {
	c, seen := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"event":{"id":"1","isFavorite":false}}}`))
	})

	favorite, err := c.ToggleFavorite(context.Background(), "1", true)
	require.NoError(t, err)
	assert.False(t, favorite)

	requests := seen()
	require.Len(t, requests, 1)
	assert.Equal(t, "/favorites/remove/1", requests[0].URL.Path)
}

func TestToggleFavorite_ServerEchoWins(t *testing.T) {
	// The server reports the event is still favorited even though the
	// caller asked to remove it; the echoed state is returned.
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"event":{"id":"1","isFavorite":true}}}`))
	})

	favorite, err := c.ToggleFavorite(context.Background(), "1", true)
	require.NoError(t, err)
	assert.True(t, favorite)
}

func TestToggleFavorite_NegationFallbackWithoutEcho(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{}}`))
	})

	favorite, err := c.ToggleFavorite(context.Background(), "1", false)
	require.NoError(t, err)
	assert.True(t, favorite)

	favorite, err = c.ToggleFavorite(context.Background(), "1", true)
	require.NoError(t, err)
	assert.False(t, favorite)
}

func TestToggleFavorite_UnknownEvent(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Event not found"}`))
	})

	favorite, err := c.ToggleFavorite(context.Background(), "999", false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrEventNotFound))
	// On failure the reported state is unchanged.
	assert.False(t, favorite)
}
