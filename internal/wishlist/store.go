// Package wishlist implements the saved-for-later list behind the same
// signatures the real server-backed endpoints will use, so the in-memory
// store can be swapped out without touching callers.
package wishlist

import (
	"context"
	"fmt"
	"sync"
	"time"

	"btickets/internal/status"
	"btickets/models"
)

// Service is the contract the API client delegates wishlist operations to.
type Service interface {
	List(ctx context.Context) ([]models.WishlistItem, error)
	Add(ctx context.Context, eventID string) (*models.WishlistItem, error)
	Remove(ctx context.Context, itemID string) error
}

var _ Service = (*Store)(nil)

// Store is the in-memory stand-in for the unfinished server-side wishlist
// endpoints. All mutations go through a single mutex; the list is ordered
// by insertion.
type Store struct {
	mu     sync.Mutex
	items  []models.WishlistItem
	events map[string]models.Event

	// now is swappable in tests.
	now func() time.Time
}

// NewStore seeds the store with the known events and any pre-existing
// wishlist entries.
func NewStore(events []models.Event, items []models.WishlistItem) *Store {
	byID := make(map[string]models.Event, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}
	return &Store{
		items:  append([]models.WishlistItem(nil), items...),
		events: byID,
		now:    time.Now,
	}
}

func (s *Store) List(_ context.Context) ([]models.WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.WishlistItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *Store) Add(_ context.Context, eventID string) (*models.WishlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return nil, fmt.Errorf("wishlist add %q: %w", eventID, status.ErrEventNotFound)
	}

	now := s.now()
	item := models.WishlistItem{
		ID:        fmt.Sprintf("wish%d", now.UnixNano()),
		Event:     event,
		AddedDate: now.Format("2006-01-02"),
	}
	s.items = append(s.items, item)
	return &item, nil
}

func (s *Store) Remove(_ context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("wishlist remove %q: %w", itemID, status.ErrWishlistItemNotFound)
}
