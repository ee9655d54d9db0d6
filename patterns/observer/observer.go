// Package observer demonstrates the Observer pattern: subscribers register
// with a subject and are notified on every state change.
package observer

import "fmt"

// Observer receives price updates for a product.
type Observer interface {
	Update(product string, price float64)
}

// PriceFeed is the subject. Observers subscribe to price changes.
type PriceFeed struct {
	product   string
	price     float64
	observers []Observer
}

// NewPriceFeed creates a feed for one product.
func NewPriceFeed(product string, price float64) *PriceFeed {
	return &PriceFeed{product: product, price: price}
}

// Subscribe registers an observer. It does not replay the current price.
func (f *PriceFeed) Subscribe(o Observer) {
	f.observers = append(f.observers, o)
}

// Unsubscribe removes an observer. Unknown observers are ignored.
func (f *PriceFeed) Unsubscribe(o Observer) {
	for i, existing := range f.observers {
		if existing == o {
			f.observers = append(f.observers[:i], f.observers[i+1:]...)
			return
		}
	}
}

// SetPrice updates the price and notifies every observer in subscription
// order. Setting the same price again does not notify.
func (f *PriceFeed) SetPrice(price float64) {
	if price == f.price {
		return
	}
	f.price = price
	for _, o := range f.observers {
		o.Update(f.product, price)
	}
}

// Log records every update it receives, useful as a concrete observer.
type Log struct {
	Entries []string
}

func (l *Log) Update(product string, price float64) {
	l.Entries = append(l.Entries, fmt.Sprintf("%s is now %.2f", product, price))
}
