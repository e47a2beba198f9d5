package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrMalformedPrice is returned when a product's price string cannot be
// parsed as a decimal amount.
var ErrMalformedPrice = errors.New("malformed price")

// Product is one catalog entry. The catalog file is read-only input; nothing
// in this system ever mutates a product.
type Product struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Price string   `json:"price"` // "$"-prefixed decimal, e.g. "$10.00"
	Imgs  []string `json:"imgs"`
}

// UnitPrice parses the "$"-prefixed price string.
func (p Product) UnitPrice() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimPrefix(p.Price, "$"))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: product %d price %q", ErrMalformedPrice, p.ID, p.Price)
	}
	return d, nil
}

// Img returns the product's primary image path under /static/, or "" when
// the catalog entry carries no images.
func (p Product) Img() string {
	if len(p.Imgs) == 0 {
		return ""
	}
	return "/static/" + p.Imgs[0]
}

// FindProduct returns the first product with the given id. Catalog ids are
// expected to be unique; with duplicates the first match wins.
func FindProduct(products []Product, id int) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
