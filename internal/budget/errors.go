package budget

import "errors"

var (
	// ErrEmptyName is returned when a category name is empty after trimming.
	ErrEmptyName = errors.New("category name is empty")

	// ErrDuplicateCategory is returned when an add or rename would collide
	// with an existing identifier.
	ErrDuplicateCategory = errors.New("category already exists")

	// ErrLastCategory is returned when removing the sole remaining category.
	ErrLastCategory = errors.New("cannot remove the last category")

	// ErrUnknownCategory is returned when an identifier is not in the registry.
	ErrUnknownCategory = errors.New("no such category")

	// ErrEmptyColor is returned when setting an empty color token.
	ErrEmptyColor = errors.New("color is empty")

	// ErrInvalidTimeFrame is returned for non-positive month counts.
	ErrInvalidTimeFrame = errors.New("time frame must be a positive number of months")
)
