package errstore

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrDuplicateCode     = errors.New("duplicate error code")
	ErrDuplicateName     = errors.New("duplicate error name")
	ErrInvalidDescriptor = errors.New("invalid error descriptor")
)

// DuplicateCodeError is returned by Register and Merge when a code is
// already present. It is a setup bug and should abort startup.
type DuplicateCodeError struct {
	Codes []Code
}

func (e *DuplicateCodeError) Error() string {
	if len(e.Codes) == 1 {
		return fmt.Sprintf("error code %s is already registered", e.Codes[0])
	}
	return fmt.Sprintf("error codes %s are already registered", joinCodes(e.Codes))
}

// Is matches ErrDuplicateCode.
func (e *DuplicateCodeError) Is(target error) bool {
	return target == ErrDuplicateCode
}

// DuplicateNameError is returned by Register and Merge when a name is
// already bound to another code.
type DuplicateNameError struct {
	Name     string
	Existing Code
	Code     Code
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("error name %q is already registered for code %s (got code %s)", e.Name, e.Existing, e.Code)
}

// Is matches ErrDuplicateName.
func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

func joinCodes(codes []Code) string {
	parts := make([]string, 0, len(codes))
	for _, c := range codes {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, ", ")
}
