package money

import (
	"math"

	"github.com/google/uuid"
)

// Money is anything with a face value.
type Money interface {
	Value() float64
	Name() string
	Color() string
	Serial() uuid.UUID
}

// Cents converts a face value in dollars to whole cents.
func Cents(m Money) int {
	return int(math.Round(m.Value() * 100))
}

// Total sums face values in dollars.
func Total[M Money](items []M) float64 {
	total := 0.0
	for _, m := range items {
		total += m.Value()
	}
	return total
}
