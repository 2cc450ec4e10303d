// Package errstore maps application error codes to structured error
// descriptors used to build consistent API error responses.
//
// Each descriptor has:
//   - A code (integer or string), unique within a Store
//   - A symbolic name (e.g., "USER_NOT_FOUND"), also unique within a Store
//   - The HTTP status reported when the error is surfaced
//   - A debug message for developers and a user message for end users
//   - Optional admin message, attached data and logger
//
// Messages are literal text, a list of lines, or a formatter invoked with
// per-call arguments when the error is looked up.
//
// Every Store starts with four baseline descriptors:
//   - 9999: UNKNOWN_ERROR (500), returned for unregistered codes
//   - 9998: INTERNAL_SERVER_ERROR (500)
//   - 9997: FORBIDDEN (403)
//   - 9996: UNAUTHORIZED (401)
//
// Baseline codes may collide during Merge; every other collision fails.
//
// Example usage:
//
//	store := errstore.New(errstore.WithStatusEmitter(emitter))
//	store.MustRegister(errstore.NewDescriptor(
//		errstore.IntCode(1001), "USER_NOT_FOUND", http.StatusNotFound,
//		errstore.Sprintf("user %v not found"),
//		errstore.Text("The user could not be found."),
//	))
//
//	resolved := store.Lookup(errstore.IntCode(1001), errstore.DebugArgs(userID))
//	fmt.Println(resolved.User) // safe for end users
//
// The codemap is not synchronized. Register and Merge must complete before
// the Store is shared between goroutines; Lookup is then safe to call
// concurrently, and WithoutHTTPStatus/EmitTo scope status emission per call.
package errstore
