// Package errx provides structured, code-based errors for the errstore
// tooling: catalog loading, configuration and the CLI.
//
// It is distinct from package errstore, which describes the errors of the
// host application. errx errors describe failures of errstore itself.
//
// Each error has:
//   - A stable 5-digit category code (e.g., "62000" for catalog errors)
//   - A category description (e.g., "Catalog error")
//   - A user-facing message
//   - Optional structured context (key-value pairs)
//   - Optional cause and base sentinel errors
//
// Category codes:
//   - 60xxx: CLI/argument validation errors
//   - 61xxx: Store registration and merge errors
//   - 62xxx: Catalog loading errors
//   - 63xxx: Configuration errors
//   - 64xxx: HTTP adapter errors
//
// Example usage:
//
//	err := errx.WrapCatalog("failed to parse catalog", yamlErr).
//		WithContext("path", path).
//		WithBase(catalog.ErrParse)
//
//	fmt.Println(errx.UserString(err))  // User-friendly message
//	fmt.Println(errx.DebugString(err)) // Full debug details
package errx
