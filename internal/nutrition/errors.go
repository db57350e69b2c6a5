package nutrition

import "fmt"

// InvalidProfileError signals a profile with missing or physiologically
// out-of-range fields. Callers surface it to the user with the offending
// field named; retrying without fixing the input is pointless.
type InvalidProfileError struct {
	Field  string
	Reason string
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid profile: %s %s", e.Field, e.Reason)
}

// InvalidTargetError signals a target that cannot be compared against,
// such as one with non-positive calories.
type InvalidTargetError struct {
	Reason string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("invalid target: %s", e.Reason)
}
