// Package errhttp connects an errstore.Store to net/http handlers: status
// emission on the current response, JSON error envelopes, and a mountable
// router exposing the client export.
package errhttp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"errstore/pkg/errstore"
	"errstore/pkg/errx"
)

// Envelope is the JSON body written by Write.
type Envelope struct {
	Error errstore.ClientDescriptor `json:"error"`
}

// ResponseStatus returns a StatusEmitter that writes the status header on w.
func ResponseStatus(w http.ResponseWriter) errstore.StatusEmitter {
	return errstore.StatusEmitterFunc(w.WriteHeader)
}

// encodeFailureBody is served when a payload cannot be encoded, typically
// because a descriptor carries data encoding/json rejects.
const encodeFailureBody = `{"error":{"code":9998,"name":"INTERNAL_SERVER_ERROR","httpStatus":500}}` + "\n"

// Write looks up code and serves the resolved descriptor as a JSON
// envelope. The status is emitted on w unless suppressed by opts, in
// which case the server default of 200 applies. If the envelope cannot be
// encoded, a 500 with a fixed body is written and the error returned.
func Write(w http.ResponseWriter, store *errstore.Store, code errstore.Code, opts ...errstore.LookupOption) error {
	status := 0
	capture := errstore.StatusEmitterFunc(func(s int) { status = s })
	opts = append([]errstore.LookupOption{errstore.EmitTo(capture)}, opts...)
	resolved := store.Lookup(code, opts...)
	return respond(w, status, Envelope{Error: resolved.Serialize()})
}

// RouterOption configures NewRouter.
type RouterOption func(*handler)

// WithLogger sets the logger receiving response encoding failures.
func WithLogger(logger *zap.Logger) RouterOption {
	return func(h *handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewRouter returns a router serving
//   - GET /errors: the client export
//   - GET /errors/{code}: the projection of one descriptor
//
// Mount it under a prefix of the host router with PathPrefix/Handler.
func NewRouter(store *errstore.Store, opts ...RouterOption) *mux.Router {
	h := &handler{store: store, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(h)
	}
	router := mux.NewRouter()
	router.HandleFunc("/errors", h.export).Methods(http.MethodGet).Name("errors")
	router.HandleFunc("/errors/{code}", h.descriptor).Methods(http.MethodGet).Name("error")
	return router
}

type handler struct {
	store  *errstore.Store
	logger *zap.Logger
}

func (h *handler) export(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, 0, h.store.ExportForClient())
}

// descriptor serves 404 with the UNKNOWN_ERROR projection for unknown codes.
func (h *handler) descriptor(w http.ResponseWriter, r *http.Request) {
	code := errstore.ParseCode(mux.Vars(r)["code"])

	d, ok := h.store.Get(code)
	if !ok {
		unknown := h.store.Lookup(code, errstore.WithoutHTTPStatus())
		h.serve(w, r, http.StatusNotFound, unknown.Serialize())
		return
	}
	h.serve(w, r, 0, d.Serialize())
}

func (h *handler) serve(w http.ResponseWriter, r *http.Request, status int, v any) {
	if err := respond(w, status, v); err != nil {
		h.logger.Error("Failed to encode error response",
			zap.String("path", r.URL.Path),
			zap.Any("error.fields", errx.Fields(err)),
			zap.Error(err))
	}
}

// respond encodes v before touching w, so an encoding failure still
// produces a well-formed 500. A zero status leaves the default of 200.
func respond(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	body, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, encodeFailureBody)
		return errx.WrapHTTP(fmt.Sprintf("failed to encode error response: %v", err), err)
	}
	if status != 0 {
		w.WriteHeader(status)
	}
	_, err = w.Write(append(body, '\n'))
	return err
}
