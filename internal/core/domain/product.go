package domain

import "time"

// Product is a catalog item. Name is unique across the catalog.
type Product struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image,omitempty"`
	Type      string    `json:"type,omitempty"`
	DateEntry time.Time `json:"dateEntry"`
}
