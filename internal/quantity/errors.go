package quantity

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrIncompatibleDimensions = errors.New("incompatible dimensions")
	ErrUnsupportedOperation   = errors.New("unsupported operation")
	ErrUnsupportedPayload     = errors.New("unsupported payload")
	ErrPrecedenceCycle        = errors.New("precedence registration creates a cycle")
	ErrDuplicateSpec          = errors.New("operation specification already registered")
)

// DimensionError reports a failed conversion or signature check. It
// always carries both units and signatures involved; Op and Arg
// identify the operation and operand position when the failure occurs
// during dispatch.
type DimensionError struct {
	Op       string // Operation name, empty for direct ConvertTo calls
	Arg      int    // 0-based operand position, -1 when not applicable
	From     Unit
	To       Unit
	FromDims Dimensions
	ToDims   Dimensions
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	msg := fmt.Sprintf("cannot convert %q %s to %q %s",
		e.From, e.FromDims, e.To, e.ToDims)
	switch {
	case e.Op != "" && e.Arg >= 0:
		return fmt.Sprintf("%s: argument %d: %s", e.Op, e.Arg, msg)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, msg)
	default:
		return msg
	}
}

// Unwrap makes the error match ErrIncompatibleDimensions.
func (e *DimensionError) Unwrap() error { return ErrIncompatibleDimensions }

// OperationError reports an operation name with no specification entry.
type OperationError struct {
	Op string
}

// Error implements the error interface.
func (e *OperationError) Error() string {
	return fmt.Sprintf("no specification for operation %q", e.Op)
}

// Unwrap makes the error match ErrUnsupportedOperation.
func (e *OperationError) Unwrap() error { return ErrUnsupportedOperation }

// PayloadError reports a magnitude payload lacking a capability
// required by the requested operation.
type PayloadError struct {
	Op     string
	Arg    int // 0-based operand position, -1 when not applicable
	Reason string
}

// Error implements the error interface.
func (e *PayloadError) Error() string {
	switch {
	case e.Op != "" && e.Arg >= 0:
		return fmt.Sprintf("%s: argument %d: %s", e.Op, e.Arg, e.Reason)
	case e.Op != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	default:
		return e.Reason
	}
}

// Unwrap makes the error match ErrUnsupportedPayload.
func (e *PayloadError) Unwrap() error { return ErrUnsupportedPayload }
