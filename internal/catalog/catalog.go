package catalog

import "sort"

type Product struct {
	ID        string  `json:"id"`
	Slug      string  `json:"slug"`
	Title     string  `json:"title"`
	Subtitle  string  `json:"subtitle"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Weight    string  `json:"weight"`
	Inventory int     `json:"inventory"`
	Featured  bool    `json:"featured,omitempty"`
}

// Catalog is a read-only, seeded product index.
type Catalog struct {
	byID   map[string]Product
	bySlug map[string]Product
}

func New(products []Product) *Catalog {
	c := &Catalog{
		byID:   make(map[string]Product, len(products)),
		bySlug: make(map[string]Product, len(products)),
	}
	for _, p := range products {
		c.byID[p.ID] = p
		c.bySlug[p.Slug] = p
	}
	return c
}

func (c *Catalog) ByID(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) BySlug(slug string) (Product, bool) {
	p, ok := c.bySlug[slug]
	return p, ok
}

func (c *Catalog) All() []Product {
	out := make([]Product, 0, len(c.byID))
	for _, p := range c.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Default returns the seeded demo catalog.
func Default() *Catalog {
	return New([]Product{
		{ID: "1", Slug: "super-lemon-haze-14g", Title: "Super Lemon Haze", Subtitle: "Premium Sativa Flower", Category: "flower", Price: 119.99, Weight: "14g", Inventory: 47, Featured: true},
		{ID: "2", Slug: "granddaddy-purple-7g", Title: "Granddaddy Purple", Subtitle: "Classic Indica Flower", Category: "flower", Price: 69.99, Weight: "7g", Inventory: 32},
		{ID: "3", Slug: "blue-dream-cartridge", Title: "Blue Dream Cartridge", Subtitle: "Hybrid Vape Cart", Category: "vape", Price: 44.99, Weight: "1g", Inventory: 58, Featured: true},
		{ID: "4", Slug: "mixed-berry-gummies", Title: "Mixed Berry Gummies", Subtitle: "25mg per piece", Category: "gummies", Price: 29.99, Weight: "250mg", Inventory: 120},
		{ID: "5", Slug: "sour-diesel-prerolls", Title: "Sour Diesel Pre-Rolls", Subtitle: "5-pack Sativa", Category: "prerolls", Price: 39.99, Weight: "5g", Inventory: 64},
		{ID: "6", Slug: "northern-lights-3-5g", Title: "Northern Lights", Subtitle: "Indica Flower", Category: "flower", Price: 42.99, Weight: "3.5g", Inventory: 21},
	})
}
