package errstore

import "net/http"

// Baseline codes present in every Store.
var (
	CodeUnknown      = IntCode(9999)
	CodeInternal     = IntCode(9998)
	CodeForbidden    = IntCode(9997)
	CodeUnauthorized = IntCode(9996)
)

// Baseline names.
const (
	NameUnknown      = "UNKNOWN_ERROR"
	NameInternal     = "INTERNAL_SERVER_ERROR"
	NameForbidden    = "FORBIDDEN"
	NameUnauthorized = "UNAUTHORIZED"
)

const genericUserMessage = "An unexpected error occurred. Please try again later."

var baselineCodes = map[string]struct{}{
	CodeUnknown.String():      {},
	CodeInternal.String():     {},
	CodeForbidden.String():    {},
	CodeUnauthorized.String(): {},
}

// IsBaseline reports whether code is one of the baseline codes.
func IsBaseline(code Code) bool {
	_, ok := baselineCodes[code.String()]
	return ok
}

// baseline returns fresh baseline descriptors. The UNKNOWN_ERROR debug
// message receives the unrecognized code as its argument.
func baseline() []*Descriptor {
	return []*Descriptor{
		NewDescriptor(CodeUnknown, NameUnknown, http.StatusInternalServerError,
			Sprintf("unrecognized error code: %v"),
			Text(genericUserMessage)),
		NewDescriptor(CodeInternal, NameInternal, http.StatusInternalServerError,
			Text("internal server error"),
			Text(genericUserMessage)),
		NewDescriptor(CodeForbidden, NameForbidden, http.StatusForbidden,
			Text("access to the requested resource is forbidden"),
			Text("You do not have permission to perform this action.")),
		NewDescriptor(CodeUnauthorized, NameUnauthorized, http.StatusUnauthorized,
			Text("authentication required"),
			Text("Please sign in to continue.")),
	}
}
