package eval

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidArgument is matched (via errors.Is) by every failure a measure
// reports about its input.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError describes input that lies outside the domain of a
// measure. Values holds the offending operands so callers can report them.
type InvalidArgumentError struct {
	Measure string
	Reason  string
	Values  []float64
}

func (e *InvalidArgumentError) Error() string {
	if len(e.Values) == 0 {
		return fmt.Sprintf("%s: %s", e.Measure, e.Reason)
	}
	return fmt.Sprintf("%s: %s but received %v", e.Measure, e.Reason, e.Values)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidArgument(measure, reason string, values ...float64) error {
	return errors.WithStack(&InvalidArgumentError{
		Measure: measure,
		Reason:  reason,
		Values:  values,
	})
}
