package domain

import "time"

// Product is a catalog item. Prices are Chilean pesos without cents.
type Product struct {
	ID          string
	Code        string
	Name        string
	Category    string
	PriceCLP    int
	Description string
	Image       string
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
