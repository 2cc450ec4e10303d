package errstore

import (
	"fmt"
	"sort"
	"sync"
)

// Store is a registry of descriptors keyed by code.
type Store struct {
	codemap map[string]*Descriptor
	names   map[string]Code
	emitter StatusEmitter

	suppressMu   sync.Mutex
	suppressNext bool
}

// New creates a Store holding the baseline descriptors.
func New(opts ...Option) *Store {
	s := &Store{
		codemap: make(map[string]*Descriptor),
		names:   make(map[string]Code),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, d := range baseline() {
		s.put(d)
	}
	return s
}

// Populator registers domain descriptors into a Store.
type Populator interface {
	Populate(s *Store) error
}

// PopulateFunc adapts a function to Populator.
type PopulateFunc func(s *Store) error

// Populate calls f(s).
func (f PopulateFunc) Populate(s *Store) error {
	return f(s)
}

// Populate runs p against the Store. It is called by the owning
// application during initialization, never by the Store itself.
func (s *Store) Populate(p Populator) error {
	if p == nil {
		return nil
	}
	return p.Populate(s)
}

// Register adds d. It fails when the code or the name is already present.
func (s *Store) Register(d *Descriptor) error {
	if err := validate(d); err != nil {
		return err
	}
	if _, ok := s.codemap[d.Code.String()]; ok {
		return &DuplicateCodeError{Codes: []Code{d.Code}}
	}
	if existing, ok := s.names[d.Name]; ok {
		return &DuplicateNameError{Name: d.Name, Existing: existing, Code: d.Code}
	}
	s.put(d)
	return nil
}

// MustRegister is like Register but panics on error. It is meant for
// static descriptor tables.
func (s *Store) MustRegister(descriptors ...*Descriptor) {
	for _, d := range descriptors {
		if err := s.Register(d); err != nil {
			panic(err)
		}
	}
}

func validate(d *Descriptor) error {
	if d == nil {
		return fmt.Errorf("%w: nil descriptor", ErrInvalidDescriptor)
	}
	if d.Code.IsZero() {
		return fmt.Errorf("%w: empty code for %q", ErrInvalidDescriptor, d.Name)
	}
	if d.Name == "" {
		return fmt.Errorf("%w: empty name for code %s", ErrInvalidDescriptor, d.Code)
	}
	return nil
}

func (s *Store) put(d *Descriptor) {
	key := d.Code.String()
	if old, ok := s.codemap[key]; ok && s.names[old.Name].String() == key {
		delete(s.names, old.Name)
	}
	s.codemap[key] = d
	s.names[d.Name] = d.Code
}

func (s *Store) remove(code Code) {
	key := code.String()
	old, ok := s.codemap[key]
	if !ok {
		return
	}
	delete(s.codemap, key)
	if s.names[old.Name].String() == key {
		delete(s.names, old.Name)
	}
}

// Get returns the registered descriptor without resolving it or
// triggering any side effect.
func (s *Store) Get(code Code) (*Descriptor, bool) {
	d, ok := s.codemap[code.String()]
	return d, ok
}

// Lookup returns a resolved copy of the descriptor registered for code.
// Unknown codes resolve to UNKNOWN_ERROR with code as its debug argument.
//
// Unless suppressed, the resolved HTTP status is emitted. If the
// descriptor carries a Logger it receives the resolved descriptor.
func (s *Store) Lookup(code Code, opts ...LookupOption) *Descriptor {
	cfg := lookupConfig{emitter: s.emitter}
	for _, opt := range opts {
		opt(&cfg)
	}

	var resolved *Descriptor
	if d, ok := s.codemap[code.String()]; ok {
		resolved = d.Resolve(cfg.debugArgs, cfg.userArgs, cfg.adminArgs)
	} else {
		resolved = s.unknown().Resolve([]any{code}, cfg.userArgs, cfg.adminArgs)
	}

	// The one-shot flag is consumed by every call, suppressed or not.
	suppressed := s.takeSuppression() || cfg.suppress
	if !suppressed && cfg.emitter != nil {
		cfg.emitter.EmitStatus(resolved.HTTPStatus)
	}
	if resolved.Logger != nil {
		resolved.Logger.LogDescriptor(resolved)
	}
	return resolved
}

func (s *Store) unknown() *Descriptor {
	if d, ok := s.codemap[CodeUnknown.String()]; ok {
		return d
	}
	return baseline()[0]
}

// SuppressHTTPStatus disables status emission for exactly the next Lookup.
// Concurrent callers should prefer the WithoutHTTPStatus lookup option.
func (s *Store) SuppressHTTPStatus() {
	s.suppressMu.Lock()
	defer s.suppressMu.Unlock()
	s.suppressNext = true
}

func (s *Store) takeSuppression() bool {
	s.suppressMu.Lock()
	defer s.suppressMu.Unlock()
	suppressed := s.suppressNext
	s.suppressNext = false
	return suppressed
}

// Merge imports every descriptor of other.
//
// By default a collision on any non-baseline code or name fails before the
// Store is modified; baseline codes are overwritten. With AllowOverwrite,
// entries of other always win.
func (s *Store) Merge(other *Store, opts ...MergeOption) error {
	if other == nil {
		return nil
	}
	cfg := mergeConfig{disallowDuplicates: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	incoming := other.Descriptors()
	if cfg.disallowDuplicates {
		if err := s.checkCollisions(incoming); err != nil {
			return err
		}
	}
	for _, d := range incoming {
		if existing, ok := s.names[d.Name]; ok && existing.String() != d.Code.String() {
			s.remove(existing)
		}
		s.put(d.clone())
	}
	return nil
}

func (s *Store) checkCollisions(incoming []*Descriptor) error {
	var dups []Code
	for _, d := range incoming {
		if IsBaseline(d.Code) {
			continue
		}
		if _, ok := s.codemap[d.Code.String()]; ok {
			dups = append(dups, d.Code)
		}
	}
	if len(dups) > 0 {
		return &DuplicateCodeError{Codes: dups}
	}
	for _, d := range incoming {
		if IsBaseline(d.Code) {
			continue
		}
		if existing, ok := s.names[d.Name]; ok {
			return &DuplicateNameError{Name: d.Name, Existing: existing, Code: d.Code}
		}
	}
	return nil
}

// Len returns the number of registered descriptors, baseline included.
func (s *Store) Len() int {
	return len(s.codemap)
}

// Codes returns every registered code sorted by its text.
func (s *Store) Codes() []Code {
	descriptors := s.Descriptors()
	codes := make([]Code, 0, len(descriptors))
	for _, d := range descriptors {
		codes = append(codes, d.Code)
	}
	return codes
}

// Descriptors returns every registered descriptor sorted by code text.
func (s *Store) Descriptors() []*Descriptor {
	out := make([]*Descriptor, 0, len(s.codemap))
	for _, d := range s.codemap {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Code.String() < out[j].Code.String()
	})
	return out
}
