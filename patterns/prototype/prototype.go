// Package prototype demonstrates the Prototype pattern: new objects are
// produced by deep-copying an existing one.
package prototype

// Product is a catalog entry. Tags is a mutable slice, so Clone must copy
// it rather than share the backing array.
type Product struct {
	Name  string
	Price float64
	Tags  []string
}

// Clone returns a deep copy of the product. Mutating the clone's tags does
// not affect the original.
func (p *Product) Clone() *Product {
	tags := make([]string, len(p.Tags))
	copy(tags, p.Tags)
	return &Product{
		Name:  p.Name,
		Price: p.Price,
		Tags:  tags,
	}
}

// WithPrice clones the product and gives the copy a new price.
func (p *Product) WithPrice(price float64) *Product {
	c := p.Clone()
	c.Price = price
	return c
}
