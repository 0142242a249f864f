package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Item is one cart entry. Name and UnitPrice are snapshots taken when
// the product was added; later catalog changes do not touch them.
type Item struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"image_url"`
}

// Cart maps product id to its entry. It is session-scoped and
// single-writer, so it carries no locking of its own.
type Cart map[string]Item

// Add inserts a new entry with quantity 1, or bumps the quantity of an
// existing one. The snapshot fields are only captured on first insert.
func (c Cart) Add(productID, name string, unitPrice decimal.Decimal, imageURL string) {
	if it, ok := c[productID]; ok {
		it.Quantity++
		c[productID] = it
		return
	}
	c[productID] = Item{
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
		ImageURL:  imageURL,
	}
}

// Increase is a no-op when the product is not in the cart.
func (c Cart) Increase(productID string) {
	it, ok := c[productID]
	if !ok {
		return
	}
	it.Quantity++
	c[productID] = it
}

// Decrease removes the entry when its quantity would drop below 1, and
// is a no-op for absent products.
func (c Cart) Decrease(productID string) {
	it, ok := c[productID]
	if !ok {
		return
	}
	if it.Quantity <= 1 {
		delete(c, productID)
		return
	}
	it.Quantity--
	c[productID] = it
}

func (c Cart) Remove(productID string) {
	delete(c, productID)
}

type Line struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	ImageURL  string          `json:"image_url"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Lines renders the cart as display lines with computed subtotals,
// ordered by product id for a stable view. Entries that fail the
// quantity/price sanity checks are returned separately so the caller
// can log and skip them instead of failing the whole view.
func (c Cart) Lines() (lines []Line, malformed []string) {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		it := c[id]
		if it.Quantity < 1 || it.UnitPrice.IsNegative() {
			malformed = append(malformed, id)
			continue
		}
		lines = append(lines, Line{
			ProductID: id,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			ImageURL:  it.ImageURL,
			Subtotal:  it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
		})
	}
	return lines, malformed
}

// Total recomputes the grand total from scratch on every call.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	lines, _ := c.Lines()
	for _, ln := range lines {
		total = total.Add(ln.Subtotal)
	}
	return total
}

func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	for id, it := range c {
		out[id] = it
	}
	return out
}
