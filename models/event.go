package models

import (
	"github.com/shopspring/decimal"
)

type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Location    string   `json:"location"`
	Prices      []Price  `json:"prices"`
	Image       string   `json:"image,omitempty"`
	Category    Category `json:"category"`
	Featured    bool     `json:"featured"`
	IsFavorite  bool     `json:"isFavorite"`
}

// Price is one ticket tier of an event. Category is a free-form tier
// label such as "standard" or "vip".
type Price struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"` // ISO 4217
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PriceFor returns the tier with the given label, or nil.
func (e *Event) PriceFor(category string) *Price {
	for i := range e.Prices {
		if e.Prices[i].Category == category {
			return &e.Prices[i]
		}
	}
	return nil
}
