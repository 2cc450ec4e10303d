package errx

// CreateByCode creates an Error, wrapping cause when it is not nil.
func CreateByCode(code, description, message string, cause error) *Error {
	if cause != nil {
		return Wrap(code, description, message, cause)
	}
	return New(code, description, message)
}

// FromSentinel creates an Error whose category is found by looking up the
// sentinel. Unknown sentinels fall back to the CLI category.
func FromSentinel(sentinel error, lookup func(error) (code, description string), message string, cause error) *Error {
	code, desc := lookup(sentinel)
	if code == "" {
		code = CodeCLI
		desc = DescCLI
	}
	return CreateByCode(code, desc, message, cause).WithBase(sentinel)
}

// CLI creates a CLI/argument validation error.
func CLI(message string) *Error {
	return New(CodeCLI, DescCLI, message)
}

// WrapCLI wraps a cause with a CLI/argument validation error.
func WrapCLI(message string, cause error) *Error {
	return Wrap(CodeCLI, DescCLI, message, cause)
}

// WrapStore wraps a registration or merge failure.
func WrapStore(message string, cause error) *Error {
	return Wrap(CodeStore, DescStore, message, cause)
}

// Catalog creates a catalog error.
func Catalog(message string) *Error {
	return New(CodeCatalog, DescCatalog, message)
}

// WrapCatalog wraps a cause with a catalog error.
func WrapCatalog(message string, cause error) *Error {
	return Wrap(CodeCatalog, DescCatalog, message, cause)
}

// WrapConfig wraps a cause with a configuration error.
func WrapConfig(message string, cause error) *Error {
	return Wrap(CodeConfig, DescConfig, message, cause)
}

// WrapHTTP wraps a cause with an HTTP adapter error.
func WrapHTTP(message string, cause error) *Error {
	return Wrap(CodeHTTP, DescHTTP, message, cause)
}
