package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices and totals go out as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ErrInvalidQuantity is returned by Update for quantities below one.
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Cart is a visitor's accumulated purchase intent: an ordered sequence of
// product ids, one entry per unit. Duplicates encode quantity.
type Cart []int

// Add appends quantity copies of productID. The quantity is taken as given;
// zero or negative appends nothing. Validation happens at the route layer.
func (c *Cart) Add(productID, quantity int) {
	for i := 0; i < quantity; i++ {
		*c = append(*c, productID)
	}
}

// RemoveAll deletes every unit of productID.
func (c *Cart) RemoveAll(productID int) {
	kept := make(Cart, 0, len(*c))
	for _, id := range *c {
		if id != productID {
			kept = append(kept, id)
		}
	}
	*c = kept
}

// Update replaces the quantity of productID: every existing unit is removed,
// then quantity units are appended at the tail.
func (c *Cart) Update(productID, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	c.RemoveAll(productID)
	c.Add(productID, quantity)
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	*c = nil
}

// Size is the total unit count, not the number of distinct products.
func (c Cart) Size() int {
	return len(c)
}

// LineItem is one display row derived from the cart and the catalog. It is
// recomputed on every read and never stored.
type LineItem struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Img       string          `json:"img"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Project derives the cart view: repeated ids coalesce into a single line
// item whose quantity and subtotal accumulate, positioned by the first
// occurrence in the cart. Ids missing from the catalog are skipped.
func Project(cart Cart, products []Product) ([]LineItem, decimal.Decimal, error) {
	items := make([]LineItem, 0, len(cart))
	index := make(map[int]int) // product id -> position in items
	total := decimal.Zero

	for _, id := range cart {
		prod, ok := FindProduct(products, id)
		if !ok {
			continue
		}
		price, err := prod.UnitPrice()
		if err != nil {
			return nil, decimal.Zero, err
		}
		if at, seen := index[id]; seen {
			items[at].Quantity++
			items[at].Subtotal = items[at].Subtotal.Add(price)
		} else {
			index[id] = len(items)
			items = append(items, LineItem{
				ID:        prod.ID,
				Name:      prod.Name,
				Img:       prod.Img(),
				Quantity:  1,
				UnitPrice: price,
				Subtotal:  price,
			})
		}
		total = total.Add(price)
	}
	return items, total, nil
}

// ProjectEach derives the payment view: one line item per cart entry with
// quantity fixed at 1, repeated ids left uncoalesced. The checkout surface
// depends on this shape; do not merge it with Project.
func ProjectEach(cart Cart, products []Product) ([]LineItem, decimal.Decimal, error) {
	items := make([]LineItem, 0, len(cart))
	total := decimal.Zero

	for _, id := range cart {
		prod, ok := FindProduct(products, id)
		if !ok {
			continue
		}
		price, err := prod.UnitPrice()
		if err != nil {
			return nil, decimal.Zero, err
		}
		items = append(items, LineItem{
			ID:        prod.ID,
			Name:      prod.Name,
			Img:       prod.Img(),
			Quantity:  1,
			UnitPrice: price,
			Subtotal:  price,
		})
		total = total.Add(price)
	}
	return items, total, nil
}
