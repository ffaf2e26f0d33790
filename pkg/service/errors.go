package service

import "errors"

var (
	// ErrInvalidID marks an id that is not a valid object id hex string.
	ErrInvalidID = errors.New("invalid id format")
	// ErrCategoryNotFound is returned when a product references a category
	// that does not exist.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrNoProducts is returned when a category listing comes back empty.
	ErrNoProducts = errors.New("no products found for this category")
	// ErrAlreadyDelivered rejects a second delivery of the same order.
	ErrAlreadyDelivered = errors.New("order is already delivered")
	// ErrInvalidStatus rejects any status update other than Delivered.
	ErrInvalidStatus = errors.New("invalid status")
)
