package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the stores and the delivery layer.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrNoActiveBooking = errors.New("no booking in progress")
	ErrSessionNotFound = errors.New("session not found")
)

// CatalogLoadError reports a failed catalog fetch for one collection.
// The core never retries; the presentation layer decides what to show.
type CatalogLoadError struct {
	Collection string
	Err        error
}

func (e *CatalogLoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Collection, e.Err)
}

func (e *CatalogLoadError) Unwrap() error {
	return e.Err
}

// NewCatalogLoadError wraps err as a CatalogLoadError for the given collection.
func NewCatalogLoadError(collection string, err error) *CatalogLoadError {
	return &CatalogLoadError{Collection: collection, Err: err}
}
