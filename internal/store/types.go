package store

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested estimate does not exist.
var ErrNotFound = errors.New("estimate not found")

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ListFilter narrows ListEstimates results.
type ListFilter struct {
	Device string
	Limit  int
}

func (f ListFilter) limit() int {
	switch {
	case f.Limit <= 0:
		return DefaultListLimit
	case f.Limit > MaxListLimit:
		return MaxListLimit
	default:
		return f.Limit
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
