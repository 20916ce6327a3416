package pronouncing

import (
	"errors"
	"fmt"
)

// ErrDictionaryLoad wraps every failure to build the default dictionary.
var ErrDictionaryLoad = errors.New("dictionary failed to load")

// PatternError reports a search pattern that is not a valid regular expression.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid search pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}
