package model

import (
	"fmt"

	domainErrors "github.com/polkiloo/pricecompare/internal/domain/errors"
)

// Store is a mock retailer the cart is priced against.
type Store struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	DeliveryFee Money   `json:"deliveryFee" yaml:"deliveryFee"`
	ETALabel    string  `json:"etaLabel" yaml:"etaLabel"`
	Rating      float64 `json:"rating" yaml:"rating"`
}

// Offer is a product price at a single store.
type Offer struct {
	Price     Money `json:"price" yaml:"price"`
	Available bool  `json:"available" yaml:"available"`
}

// Product is catalog reference data. A store missing from Pricing does not sell the product.
type Product struct {
	ID          string           `json:"id" yaml:"id"`
	Name        string           `json:"name" yaml:"name"`
	Category    string           `json:"category" yaml:"category"`
	Brand       string           `json:"brand" yaml:"brand"`
	Description string           `json:"description" yaml:"description"`
	Specs       []string         `json:"specs" yaml:"specs"`
	Pricing     map[string]Offer `json:"pricing" yaml:"pricing"`
}

// AvailableAt reports the offer for storeID when the store has the product in stock.
func (p Product) AvailableAt(storeID string) (Offer, bool) {
	offer, ok := p.Pricing[storeID]
	if !ok || !offer.Available {
		return Offer{}, false
	}
	return offer, true
}

func (p Product) clone() Product {
	out := p
	out.Specs = append([]string(nil), p.Specs...)
	if p.Pricing != nil {
		out.Pricing = make(map[string]Offer, len(p.Pricing))
		for k, v := range p.Pricing {
			out.Pricing[k] = v
		}
	}
	return out
}

// Catalog is the immutable set of stores and products. Accessors hand out copies.
type Catalog struct {
	stores   []Store
	products []Product

	storeIndex   map[string]int
	productIndex map[string]int
}

// NewCatalog validates and indexes stores and products. Stores keep their declaration order.
func NewCatalog(stores []Store, products []Product) (*Catalog, error) {
	c := &Catalog{
		stores:       make([]Store, 0, len(stores)),
		products:     make([]Product, 0, len(products)),
		storeIndex:   make(map[string]int, len(stores)),
		productIndex: make(map[string]int, len(products)),
	}

	for _, s := range stores {
		if s.ID == "" {
			return nil, fmt.Errorf("%w: store without id", domainErrors.ErrInvalidCatalog)
		}
		if _, dup := c.storeIndex[s.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate store %q", domainErrors.ErrInvalidCatalog, s.ID)
		}
		if s.DeliveryFee < 0 || s.DeliveryFee > MaxAmount {
			return nil, fmt.Errorf("%w: store %q has delivery fee out of range", domainErrors.ErrInvalidCatalog, s.ID)
		}
		c.storeIndex[s.ID] = len(c.stores)
		c.stores = append(c.stores, s)
	}

	for _, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: product without id", domainErrors.ErrInvalidCatalog)
		}
		if _, dup := c.productIndex[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate product %q", domainErrors.ErrInvalidCatalog, p.ID)
		}
		for storeID, offer := range p.Pricing {
			if _, ok := c.storeIndex[storeID]; !ok {
				return nil, fmt.Errorf("%w: product %q priced at unknown store %q", domainErrors.ErrInvalidCatalog, p.ID, storeID)
			}
			if offer.Price < 0 || offer.Price > MaxAmount {
				return nil, fmt.Errorf("%w: product %q has price out of range at %q", domainErrors.ErrInvalidCatalog, p.ID, storeID)
			}
		}
		c.productIndex[p.ID] = len(c.products)
		c.products = append(c.products, p.clone())
	}

	return c, nil
}

// Stores returns stores in declaration order.
func (c *Catalog) Stores() []Store {
	return append([]Store(nil), c.stores...)
}

// Products returns products in declaration order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	for i, p := range c.products {
		out[i] = p.clone()
	}
	return out
}

func (c *Catalog) Store(id string) (Store, bool) {
	i, ok := c.storeIndex[id]
	if !ok {
		return Store{}, false
	}
	return c.stores[i], true
}

func (c *Catalog) Product(id string) (Product, bool) {
	i, ok := c.productIndex[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i].clone(), true
}

// HasProduct avoids copying when only existence matters.
func (c *Catalog) HasProduct(id string) bool {
	_, ok := c.productIndex[id]
	return ok
}
