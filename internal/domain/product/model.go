package product

import (
	"errors"
	"fmt"
	"strings"
)

// Product kinds
const (
	KindDigital  = "digital"
	KindCoaching = "coaching"
)

// ValidKinds contains all valid product kinds.
var ValidKinds = []string{KindDigital, KindCoaching}

// Domain errors
var (
	ErrEmptyTitle    = errors.New("product title cannot be empty")
	ErrEmptyLink     = errors.New("product link cannot be empty")
	ErrInvalidKind   = errors.New("product kind must be one of: digital, coaching")
	ErrNegativePrice = errors.New("product price cannot be negative")
)

// Product is an item offered on the products grid: either a digital download
// or a coaching engagement. Price is a whole-dollar amount; zero means free.
type Product struct {
	ID          int64  `json:"id"`
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	CTA         string `json:"cta"` // Call-to-action button label
	Link        string `json:"link"`
}

// RecordID returns the collection id of the product.
func (p Product) RecordID() int64 { return p.ID }

// Validate checks that the Product has valid data.
// PRE: Product struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(p.Link) == "" {
		return ErrEmptyLink
	}
	if p.Kind != "" && !isValidKind(p.Kind) {
		return ErrInvalidKind
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// PriceLabel returns the display form of the price: "Free" for zero,
// "$<n>" otherwise.
func (p *Product) PriceLabel() string {
	if p.Price == 0 {
		return "Free"
	}
	return fmt.Sprintf("$%d", p.Price)
}

func isValidKind(k string) bool {
	for _, v := range ValidKinds {
		if v == k {
			return true
		}
	}
	return false
}
