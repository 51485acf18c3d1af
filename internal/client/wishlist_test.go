package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btickets/internal/status"
)

func TestWishlist_AddThenListIncludesItem(t *testing.T) {
	c := New(&Config{BaseURL: "http://unreachable.invalid"})
	ctx := context.Background()

	item, err := c.AddToWishlist(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", item.Event.ID)
	assert.Equal(t, time.Now().Format("2006-01-02"), item.AddedDate)

	items, err := c.Wishlist(ctx)
	require.NoError(t, err)

	found := false
	for _, it := range items {
		if it.ID == item.ID && it.Event.ID == "1" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestWishlist_RemoveRoundTrip(t *testing.T) {
	c := New(&Config{BaseURL: "http://unreachable.invalid"})
	ctx := context.Background()

	item, err := c.AddToWishlist(ctx, "2")
	require.NoError(t, err)

	before, err := c.Wishlist(ctx)
	require.NoError(t, err)

	require.NoError(t, c.RemoveFromWishlist(ctx, item.ID))

	after, err := c.Wishlist(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)-1)
}

func TestWishlist_RemoveUnknown(t *testing.T) {
	c := New(&Config{BaseURL: "http://unreachable.invalid"})
	ctx := context.Background()

	before, err := c.Wishlist(ctx)
	require.NoError(t, err)

	err = c.RemoveFromWishlist(ctx, "no-such-item")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrWishlistItemNotFound))

	after, err := c.Wishlist(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestWishlist_AddUnknownEvent(t *testing.T) {
	c := New(&Config{BaseURL: "http://unreachable.invalid"})

	_, err := c.AddToWishlist(context.Background(), "999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrEventNotFound))
}
