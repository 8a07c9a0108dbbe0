package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ledit/internal/errs"
)

// ParseLineNumber parses a user-supplied line number. Text that is not an
// integer is ErrInvalidArgument; an integer too large to represent is
// ErrInvalidLineNumber. Range checks against a file happen in the operation.
func ParseLineNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", errs.ErrInvalidLineNumber, s)
		}
		return 0, fmt.Errorf("%w: line number %q is not an integer", errs.ErrInvalidArgument, s)
	}
	return n, nil
}
