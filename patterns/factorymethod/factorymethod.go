// Package factorymethod demonstrates the Factory Method pattern:
// construction is conditional on a requested kind, and callers only see
// the shared interface.
package factorymethod

import "fmt"

// Shape exposes what every concrete shape can do.
type Shape interface {
	Kind() string
	Area() float64
}

type circle struct {
	radius float64
}

func (c circle) Kind() string  { return "circle" }
func (c circle) Area() float64 { return 3.141592653589793 * c.radius * c.radius }

type square struct {
	side float64
}

func (s square) Kind() string  { return "square" }
func (s square) Area() float64 { return s.side * s.side }

// NewShape is the factory method. It returns an error for unknown kinds.
func NewShape(kind string, size float64) (Shape, error) {
	switch kind {
	case "circle":
		return circle{radius: size}, nil
	case "square":
		return square{side: size}, nil
	default:
		return nil, fmt.Errorf("unknown shape kind: %q", kind)
	}
}
