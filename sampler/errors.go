package sampler

import "github.com/pkg/errors"

// ErrInvalidSampleCount is returned when the requested sample count is not positive
var ErrInvalidSampleCount = errors.New("invalid sample count")
