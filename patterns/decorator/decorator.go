// Package decorator demonstrates the Decorator pattern: wrappers that add
// to a beverage's cost and description without changing its type.
package decorator

// Beverage has a price and a human-readable description.
type Beverage interface {
	Cost() float64
	Description() string
}

// Espresso is the plain base beverage.
type Espresso struct{}

func (Espresso) Cost() float64       { return 1.99 }
func (Espresso) Description() string { return "espresso" }

// Milk wraps a beverage and adds steamed milk.
type Milk struct {
	Base Beverage
}

func (m Milk) Cost() float64       { return m.Base.Cost() + 0.50 }
func (m Milk) Description() string { return m.Base.Description() + ", milk" }

// Mocha wraps a beverage and adds chocolate.
type Mocha struct {
	Base Beverage
}

func (m Mocha) Cost() float64       { return m.Base.Cost() + 0.75 }
func (m Mocha) Description() string { return m.Base.Description() + ", mocha" }
