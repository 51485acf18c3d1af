package client

import (
	"context"

	"btickets/models"
)

// Wishlist, AddToWishlist and RemoveFromWishlist delegate to the injected
// wishlist service. The default is the in-memory fixture store; the
// signatures match the future server-backed endpoints so swapping the
// implementation touches no callers.

func (c *Client) Wishlist(ctx context.Context) ([]models.WishlistItem, error) {
	return c.wishlist.List(ctx)
}

func (c *Client) AddToWishlist(ctx context.Context, eventID string) (*models.WishlistItem, error) {
	return c.wishlist.Add(ctx, eventID)
}

func (c *Client) RemoveFromWishlist(ctx context.Context, itemID string) error {
	return c.wishlist.Remove(ctx, itemID)
}
