// Package delta compares two stats readings and formats the differences
// for display.
package delta

import (
	"fmt"

	"github.com/KirkDiggler/elolcd/internal/models"
)

// Result is the outcome of comparing two readings
type Result struct {
	// RatingDelta is the formatted rating difference, empty when unchanged
	RatingDelta string

	// KDDelta is the formatted K/D difference, empty when unchanged
	KDDelta string

	// Changed is true when a prior reading exists and rating or K/D moved
	Changed bool
}

// IsFirstSample reports whether previous holds no usable reading. A zero
// rating or zero K/D both count as "no reading yet".
func IsFirstSample(previous models.StatsSnapshot) bool {
	return previous.Rating == 0 || previous.KD == 0
}

// Compute compares current against previous. Only the rating and K/D of
// previous are consulted.
func Compute(current, previous models.StatsSnapshot) Result {
	if IsFirstSample(previous) {
		return Result{}
	}

	if current.Rating == previous.Rating && current.KD == previous.KD {
		return Result{}
	}

	return Result{
		RatingDelta: Format(current.Rating - previous.Rating),
		KDDelta:     Format(current.KD - previous.KD),
		Changed:     true,
	}
}

// Format renders d with three decimals and a forced "+" when d >= 0
func Format(d float64) string {
	if d >= 0 {
		return fmt.Sprintf("+%.3f", d)
	}
	return fmt.Sprintf("%.3f", d)
}
