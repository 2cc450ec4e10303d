package errstore

// Option configures a Store during New.
type Option func(*Store)

// WithStatusEmitter sets the default emitter used by Lookup.
func WithStatusEmitter(e StatusEmitter) Option {
	return func(s *Store) { s.emitter = e }
}

type lookupConfig struct {
	debugArgs []any
	userArgs  []any
	adminArgs []any
	suppress  bool
	emitter   StatusEmitter
}

// LookupOption configures a single Lookup call.
type LookupOption func(*lookupConfig)

// DebugArgs sets the arguments passed to a debug message formatter.
func DebugArgs(args ...any) LookupOption {
	return func(c *lookupConfig) { c.debugArgs = args }
}

// UserArgs sets the arguments passed to a user message formatter.
func UserArgs(args ...any) LookupOption {
	return func(c *lookupConfig) { c.userArgs = args }
}

// AdminArgs sets the arguments passed to an admin message formatter.
func AdminArgs(args ...any) LookupOption {
	return func(c *lookupConfig) { c.adminArgs = args }
}

// WithoutHTTPStatus skips status emission for this call only.
func WithoutHTTPStatus() LookupOption {
	return func(c *lookupConfig) { c.suppress = true }
}

// EmitTo overrides the Store emitter for this call, typically with the
// response writer of the current request.
func EmitTo(e StatusEmitter) LookupOption {
	return func(c *lookupConfig) { c.emitter = e }
}

type mergeConfig struct {
	disallowDuplicates bool
}

// MergeOption configures Merge.
type MergeOption func(*mergeConfig)

// AllowOverwrite lets entries of the merged Store replace colliding
// entries instead of failing.
func AllowOverwrite() MergeOption {
	return func(c *mergeConfig) { c.disallowDuplicates = false }
}
