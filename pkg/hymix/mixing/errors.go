package mixing

import (
	"errors"
	"fmt"
)

var (
	// ErrInputShape indicates coefficient or sample data has an unusable shape.
	ErrInputShape = errors.New("mixing: invalid input shape")
	// ErrInterval indicates a search interval with a >= b.
	ErrInterval = errors.New("mixing: search interval must satisfy a < b")
	// ErrTolerance indicates a non-positive tolerance.
	ErrTolerance = errors.New("mixing: tolerance must be positive")
	// ErrMaxIter indicates an iteration limit below 1.
	ErrMaxIter = errors.New("mixing: maxIter must be at least 1")
)

// ShapeError describes why a coefficient set or sample matrix was rejected.
type ShapeError struct {
	Detail string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInputShape, e.Detail)
}

// Unwrap lets errors.Is match ErrInputShape.
func (e *ShapeError) Unwrap() error {
	return ErrInputShape
}

func shapeErrorf(format string, args ...interface{}) error {
	return &ShapeError{Detail: fmt.Sprintf(format, args...)}
}
