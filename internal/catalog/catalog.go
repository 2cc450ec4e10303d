package catalog

// This file loads YAML descriptor catalogs and registers them into a Store.
// A catalog lets independently developed modules ship their error tables as
// data; Build merges several of them into one Store.

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"

	"errstore/pkg/errstore"
	"errstore/pkg/errx"
)

// Sentinel errors for catalog operations.
var (
	ErrReadCatalog  = errors.New("failed to read catalog")
	ErrParseCatalog = errors.New("failed to parse catalog")
	ErrInvalidEntry = errors.New("invalid catalog entry")
	ErrRegister     = errors.New("failed to register catalog entry")
	ErrMerge        = errors.New("failed to merge catalog")
)

// Translator maps a literal message to its localized form.
type Translator func(string) string

// Option configures how catalog entries become descriptors.
type Option func(*options)

type options struct {
	logger    errstore.Logger
	translate Translator
}

// WithLogger attaches logger to every entry marked "log: true".
func WithLogger(logger errstore.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithTranslator applies translate to every literal message and format
// layout.
func WithTranslator(translate Translator) Option {
	return func(o *options) { o.translate = translate }
}

// Catalog is a parsed descriptor file.
type Catalog struct {
	path    string
	entries []entry
	opts    options
}

type file struct {
	Errors []entry `yaml:"errors"`
}

type entry struct {
	Code       codeValue     `yaml:"code"`
	Name       string        `yaml:"name"`
	HTTPStatus int           `yaml:"httpStatus"`
	Debug      messageValue  `yaml:"debug"`
	User       messageValue  `yaml:"user"`
	Admin      *messageValue `yaml:"admin"`
	Data       *dataValue    `yaml:"data"`
	Log        bool          `yaml:"log"`
}

// Load reads and parses the catalog at path.
func Load(path string, opts ...Option) (*Catalog, error) {
	// #nosec G304 -- catalog paths are supplied by the operator.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errx.WrapCatalog(fmt.Sprintf("failed to read catalog: %v", err), err).
			WithBase(ErrReadCatalog).
			WithContext("path", path)
	}
	return parse(path, data, opts)
}

// Parse parses catalog data. name identifies the source in errors.
func Parse(name string, data []byte, opts ...Option) (*Catalog, error) {
	return parse(name, data, opts)
}

func parse(path string, data []byte, opts []Option) (*Catalog, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, errx.WrapCatalog(fmt.Sprintf("failed to parse catalog: %v", err), err).
			WithBase(ErrParseCatalog).
			WithContext("path", path)
	}
	c := &Catalog{path: path, entries: f.Errors}
	for _, opt := range opts {
		opt(&c.opts)
	}
	for i := range c.entries {
		if err := c.entries[i].validate(); err != nil {
			return nil, errx.WrapCatalog(err.Error(), err).
				WithBase(ErrInvalidEntry).
				WithContextMap(map[string]any{"path": path, "entry": i})
		}
	}
	return c, nil
}

func (e *entry) validate() error {
	if e.Code.IsZero() {
		return fmt.Errorf("entry %q has no code", e.Name)
	}
	if e.Name == "" {
		return fmt.Errorf("entry %s has no name", e.Code)
	}
	if e.HTTPStatus == 0 {
		e.HTTPStatus = http.StatusInternalServerError
	}
	if e.HTTPStatus < 100 || e.HTTPStatus > 599 {
		return fmt.Errorf("entry %s has invalid httpStatus %d", e.Code, e.HTTPStatus)
	}
	return nil
}

// Path returns the source the catalog was read from.
func (c *Catalog) Path() string {
	return c.path
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Descriptors builds a fresh descriptor for every entry.
func (c *Catalog) Descriptors() []*errstore.Descriptor {
	out := make([]*errstore.Descriptor, 0, len(c.entries))
	for _, e := range c.entries {
		d := errstore.NewDescriptor(e.Code.Code, e.Name, e.HTTPStatus,
			e.Debug.message(c.opts.translate),
			e.User.message(c.opts.translate))
		if e.Admin != nil {
			d.WithAdmin(e.Admin.message(c.opts.translate))
		}
		if e.Data != nil && e.Data.value != nil {
			d.WithData(e.Data.value)
		}
		if e.Log && c.opts.logger != nil {
			d.WithLogger(c.opts.logger)
		}
		out = append(out, d)
	}
	return out
}

// Populate registers every entry into s, stopping at the first failure.
func (c *Catalog) Populate(s *errstore.Store) error {
	for _, d := range c.Descriptors() {
		if err := s.Register(d); err != nil {
			return errx.WrapStore(fmt.Sprintf("failed to register %s: %v", d.Name, err), err).
				WithBase(ErrRegister).
				WithContextMap(map[string]any{"path": c.path, "code": d.Code.String()})
		}
	}
	return nil
}

// Build loads each catalog into its own Store and merges them in order.
// Unless overwrite is set, a code or name defined by two catalogs fails.
func Build(paths []string, overwrite bool, opts ...Option) (*errstore.Store, error) {
	store := errstore.New()
	var mergeOpts []errstore.MergeOption
	if overwrite {
		mergeOpts = append(mergeOpts, errstore.AllowOverwrite())
	}
	for _, path := range paths {
		c, err := Load(path, opts...)
		if err != nil {
			return nil, err
		}
		module := errstore.New()
		if err := module.Populate(c); err != nil {
			return nil, err
		}
		if err := store.Merge(module, mergeOpts...); err != nil {
			return nil, errx.WrapStore(fmt.Sprintf("failed to merge catalog %s: %v", path, err), err).
				WithBase(ErrMerge).
				WithContext("path", path)
		}
	}
	return store, nil
}
