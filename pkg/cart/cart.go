// Package cart holds an in-progress order as a list of product snapshots.
// Mutations rewrite the whole line set through the backing Store, so the
// stored blob is always a complete cart, never a partial diff.
package cart

import (
	"context"
	"errors"

	"github.com/example/tableserve/pkg/models"
)

var (
	// ErrAlreadyInCart signals an Add for a product id already present.
	// The existing line is untouched; quantity changes go through SetQuantity.
	ErrAlreadyInCart = errors.New("product already in cart")
	// ErrLineNotFound signals a mutation against a product id with no line.
	ErrLineNotFound = errors.New("product not in cart")
)

// Store persists cart blobs keyed by user id. A missing key reads as an
// empty cart, not an error.
type Store interface {
	Get(ctx context.Context, key string) ([]models.CartLine, error)
	Put(ctx context.Context, key string, lines []models.CartLine) error
	Clear(ctx context.Context, key string) error
}

// Cart is bound to one store key for its lifetime. It is not safe for
// concurrent use; concurrent writers to the same key are last-write-wins.
type Cart struct {
	store Store
	key   string
	lines []models.CartLine
}

// Load reads the current lines for key and returns a cart bound to it.
func Load(ctx context.Context, store Store, key string) (*Cart, error) {
	lines, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return &Cart{store: store, key: key, lines: lines}, nil
}

// Add appends a new line with quantity 1. Adding a product id that is
// already present returns ErrAlreadyInCart and changes nothing.
func (c *Cart) Add(ctx context.Context, line models.CartLine) error {
	if c.find(line.ProductID) >= 0 {
		return ErrAlreadyInCart
	}
	line.Quantity = 1
	c.lines = append(c.lines, line)
	return c.persist(ctx)
}

// SetQuantity adjusts a line's quantity by delta, clamped to a minimum of 1.
func (c *Cart) SetQuantity(ctx context.Context, productID string, delta int) error {
	i := c.find(productID)
	if i < 0 {
		return ErrLineNotFound
	}
	q := c.lines[i].Quantity + delta
	if q < 1 {
		q = 1
	}
	c.lines[i].Quantity = q
	return c.persist(ctx)
}

// Remove deletes the line for productID.
func (c *Cart) Remove(ctx context.Context, productID string) error {
	i := c.find(productID)
	if i < 0 {
		return ErrLineNotFound
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	return c.persist(ctx)
}

// Total sums price times quantity over all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Clear drops every line and removes the stored blob.
func (c *Cart) Clear(ctx context.Context) error {
	c.lines = nil
	return c.store.Clear(ctx, c.key)
}

func (c *Cart) find(productID string) int {
	for i, line := range c.lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) persist(ctx context.Context) error {
	return c.store.Put(ctx, c.key, c.lines)
}
