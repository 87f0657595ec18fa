// Package colour implements the dominant-colour pipeline: pixel sampling,
// k-means clustering, prevalence aggregation and ranking.
package colour

import "errors"

// Sentinel errors for the failure kinds the pipeline can produce.
// Callers match them with errors.Is; wrapped errors carry the cause.
var (
	// ErrEmptyImage indicates the source image contained no pixels.
	ErrEmptyImage = errors.New("image contains no pixels")

	// ErrInvalidParameter indicates an out-of-range configuration value,
	// such as a cluster count of zero or larger than the sample count.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNumericFailure indicates a non-finite value was encountered in
	// the sample data, typically from a corrupt decode.
	ErrNumericFailure = errors.New("non-finite value in sample data")
)
