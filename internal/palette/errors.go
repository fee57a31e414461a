package palette

import "fmt"

// IndexOutOfRangeError reports an entry index outside the session's bounds.
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range: %d (session has %d entries)", e.Index, e.Len)
}
