package suggestion

import "errors"

// Domain-specific errors for the suggestion package.
var (
	ErrInvalidNumSuggestions = errors.New("num_suggestions must be between 1 and 5")
)
