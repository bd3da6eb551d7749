package process

import "errors"

// Engine error taxonomy. Callers match with errors.Is; every error carries
// enough context to report which part, operation or value failed.
var (
	// ErrInvalidSpec indicates an internally inconsistent part specification,
	// e.g. a dyed part without a sealing operation.
	ErrInvalidSpec = errors.New("invalid part specification")

	// ErrInvalidCapacity indicates a non-positive jig capacity or quantity.
	ErrInvalidCapacity = errors.New("invalid jig capacity")

	// ErrUnknownOperationSlot indicates a compiled operation name that is
	// neither mapped to a timeline slot nor a known pass-through step. It is
	// raised before any timeline is written.
	ErrUnknownOperationSlot = errors.New("operation has no timeline slot")
)
