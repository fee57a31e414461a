package colour

import "fmt"

// MalformedColourError reports an input string that is not a valid
// "#rrggbb" colour.
type MalformedColourError struct {
	Input string
}

func (e *MalformedColourError) Error() string {
	return fmt.Sprintf("malformed colour %q: expected '#' followed by 6 hex digits", e.Input)
}
