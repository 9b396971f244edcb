package core

import "github.com/pkg/errors"

// ErrInvalidShapeParameter is returned by constructors and Validate for negative, zero-area or non-finite parameters
var ErrInvalidShapeParameter = errors.New("invalid shape parameter")
