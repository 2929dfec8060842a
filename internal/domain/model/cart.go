package model

import domainErrors "github.com/polkiloo/pricecompare/internal/domain/errors"

// MaxQuantity bounds the units of a single product in a cart.
const MaxQuantity = 999

// CartEntry is a product reference with a positive quantity.
type CartEntry struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Cart holds entries unique by product id in the order they were first added.
type Cart struct {
	Items []CartEntry `json:"items"`
}

func (c *Cart) IsEmpty() bool { return len(c.Items) == 0 }

// Quantity returns the quantity of productID, or zero when it is not in the cart.
func (c *Cart) Quantity(productID string) int {
	if i := c.indexOf(productID); i >= 0 {
		return c.Items[i].Quantity
	}
	return 0
}

// Add increases the quantity of productID, inserting it when absent.
// The resulting quantity may not exceed MaxQuantity.
func (c *Cart) Add(productID string, qty int) error {
	if qty < 1 || qty > MaxQuantity {
		return domainErrors.ErrInvalidQuantity
	}
	if i := c.indexOf(productID); i >= 0 {
		if c.Items[i].Quantity > MaxQuantity-qty {
			return domainErrors.ErrInvalidQuantity
		}
		c.Items[i].Quantity += qty
		return nil
	}
	c.Items = append(c.Items, CartEntry{ProductID: productID, Quantity: qty})
	return nil
}

// SetQuantity replaces the quantity of productID. Zero or less removes the entry.
func (c *Cart) SetQuantity(productID string, qty int) error {
	if qty <= 0 {
		c.Remove(productID)
		return nil
	}
	if qty > MaxQuantity {
		return domainErrors.ErrInvalidQuantity
	}
	if i := c.indexOf(productID); i >= 0 {
		c.Items[i].Quantity = qty
		return nil
	}
	c.Items = append(c.Items, CartEntry{ProductID: productID, Quantity: qty})
	return nil
}

func (c *Cart) Remove(productID string) {
	if i := c.indexOf(productID); i >= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
}

func (c *Cart) Clear() { c.Items = nil }

// Normalize merges duplicate product ids, drops non-positive quantities and
// caps merged quantities at MaxQuantity.
func (c *Cart) Normalize() {
	items := c.Items
	c.Items = nil
	for _, it := range items {
		if it.ProductID == "" || it.Quantity < 1 {
			continue
		}
		qty := min(it.Quantity, MaxQuantity)
		if i := c.indexOf(it.ProductID); i >= 0 {
			qty = min(c.Items[i].Quantity+qty, MaxQuantity)
		}
		_ = c.SetQuantity(it.ProductID, qty)
	}
}

func (c *Cart) indexOf(productID string) int {
	for i, it := range c.Items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}
