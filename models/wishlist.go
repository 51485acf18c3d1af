package models

// WishlistItem is a saved-for-later event, distinct from a purchased
// ticket. AddedDate uses the YYYY-MM-DD layout.
type WishlistItem struct {
	ID        string `json:"id"`
	Event     Event  `json:"event"`
	AddedDate string `json:"addedDate"`
}
