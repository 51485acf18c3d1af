// Package fixtures holds the seed data shared by the stub backend and the
// in-memory wishlist store. The records stand in for unfinished server-side
// endpoints and reset on every process restart.
package fixtures

import (
	"btickets/models"

	"github.com/shopspring/decimal"
)

func usd(amount string) decimal.Decimal {
	d, _ := decimal.NewFromString(amount)
	return d
}

func Categories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Music"},
		{ID: "2", Name: "Technology"},
		{ID: "3", Name: "Food & Drink"},
		{ID: "4", Name: "Art & Culture"},
		{ID: "5", Name: "Sports"},
		{ID: "6", Name: "Entertainment"},
	}
}

func Events() []models.Event {
	cats := Categories()
	return []models.Event{
		{
			ID:          "1",
			Title:       "Summer Music Festival",
			Description: "The biggest music festival of the year, featuring top artists from around the world across three days.",
			Date:        "2025-07-15",
			Time:        "16:00",
			Location:    "Central Park, New York",
			Prices: []models.Price{
				{ID: "1-std", Category: "standard", Amount: usd("89.99"), Currency: "USD"},
				{ID: "1-vip", Category: "vip", Amount: usd("249.99"), Currency: "USD"},
			},
			Category: cats[0],
			Featured: true,
		},
		{
			ID:          "2",
			Title:       "Tech Conference 2025",
			Description: "Talks, workshops and networking on the latest technologies.",
			Date:        "2025-09-20",
			Time:        "09:00",
			Location:    "Convention Center, San Francisco",
			Prices: []models.Price{
				{ID: "2-std", Category: "standard", Amount: usd("199.99"), Currency: "USD"},
			},
			Category: cats[1],
			Featured: true,
		},
		{
			ID:          "3",
			Title:       "International Food Festival",
			Description: "Over 50 food stalls from different countries, plus cooking demonstrations by renowned chefs.",
			Date:        "2025-06-10",
			Time:        "12:00",
			Location:    "Riverfront Park, Chicago",
			Prices: []models.Price{
				{ID: "3-std", Category: "standard", Amount: usd("45.00"), Currency: "USD"},
			},
			Category: cats[2],
		},
		{
			ID:          "4",
			Title:       "Art & Design Expo",
			Description: "Works from emerging and established artists, panel discussions and interactive workshops.",
			Date:        "2025-08-05",
			Time:        "10:00",
			Location:    "Modern Art Gallery, Los Angeles",
			Prices: []models.Price{
				{ID: "4-std", Category: "standard", Amount: usd("25.00"), Currency: "USD"},
			},
			Category: cats[3],
		},
		{
			ID:          "5",
			Title:       "Marathon City Run",
			Description: "A 42km route through the most scenic parts of the city. All participants receive a medal.",
			Date:        "2025-10-12",
			Time:        "07:00",
			Location:    "Downtown, Boston",
			Prices: []models.Price{
				{ID: "5-std", Category: "standard", Amount: usd("75.00"), Currency: "USD"},
			},
			Category: cats[4],
			Featured: true,
		},
		{
			ID:          "6",
			Title:       "Comedy Night Special",
			Description: "An evening with the funniest comedians in town.",
			Date:        "2025-07-28",
			Time:        "20:00",
			Location:    "Comedy Club, Austin",
			Prices: []models.Price{
				{ID: "6-std", Category: "standard", Amount: usd("35.00"), Currency: "USD"},
				{ID: "6-vip", Category: "vip", Amount: usd("80.00"), Currency: "USD"},
			},
			Category: cats[5],
		},
	}
}

func Tickets() []models.Ticket {
	events := Events()
	return []models.Ticket{
		{
			ID:           "ticket1",
			Event:        events[0],
			Status:       models.TicketActive,
			PurchaseDate: "2025-05-10",
			QRCode:       "https://example.com/qr/ticket1",
		},
		{
			ID:           "ticket2",
			Event:        events[2],
			Status:       models.TicketUsed,
			PurchaseDate: "2025-04-15",
			QRCode:       "https://example.com/qr/ticket2",
		},
		{
			ID:           "ticket3",
			Event:        events[4],
			Status:       models.TicketExpired,
			PurchaseDate: "2024-12-20",
			QRCode:       "https://example.com/qr/ticket3",
		},
	}
}

func WishlistItems() []models.WishlistItem {
	events := Events()
	return []models.WishlistItem{
		{ID: "wish1", Event: events[1], AddedDate: "2025-01-10"},
		{ID: "wish2", Event: events[3], AddedDate: "2025-01-08"},
	}
}
