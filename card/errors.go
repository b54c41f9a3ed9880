package card

import (
	"fmt"
	"strings"
)

// InvalidCardSpecError reports an unrecognized suit or rank string.
// It names the offending field and the allowed set, and is surfaced
// synchronously to the caller, never retried or silently defaulted.
type InvalidCardSpecError struct {
	Field   string
	Value   string
	Allowed []string
}

func (e *InvalidCardSpecError) Error() string {
	return fmt.Sprintf("invalid %s: %q (allowed: %s)",
		e.Field, e.Value, strings.Join(e.Allowed, ", "))
}
