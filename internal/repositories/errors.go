package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup that matched no row in any targeted table.
var ErrNotFound = errors.New("record not found")

// ErrOrderNumberConflict reports a collision on the generated order number.
// The caller regenerates the number and retries.
var ErrOrderNumberConflict = errors.New("order number already taken")

// InsufficientStockError aborts an order transaction when a line asks for
// more units than the locked product row holds.
type InsufficientStockError struct {
	ProductID   int64
	ProductCode string
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s (%s): requested %d, available %d",
		e.ProductName, e.ProductCode, e.Requested, e.Available)
}
