package errhttp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"errstore/pkg/errstore"
)

func newStore(t *testing.T) *errstore.Store {
	t.Helper()
	s := errstore.New()
	s.MustRegister(errstore.NewDescriptor(errstore.IntCode(1001), "USER_NOT_FOUND", http.StatusNotFound,
		errstore.Sprintf("user %v not found"),
		errstore.Text("The user could not be found.")))
	return s
}

func TestWrite(t *testing.T) {
	t.Run("writes status and envelope", func(t *testing.T) {
		rec := httptest.NewRecorder()

		err := Write(rec, newStore(t), errstore.IntCode(1001), errstore.DebugArgs(42))

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"error": {
			"code": 1001,
			"name": "USER_NOT_FOUND",
			"httpStatus": 404,
			"debugMessage": "user 42 not found",
			"userMessage": "The user could not be found."
		}}`, rec.Body.String())
	})

	t.Run("unknown code", func(t *testing.T) {
		rec := httptest.NewRecorder()

		require.NoError(t, Write(rec, newStore(t), errstore.StringCode("nope")))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var env struct {
			Error struct {
				Name         string `json:"name"`
				DebugMessage string `json:"debugMessage"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.Equal(t, errstore.NameUnknown, env.Error.Name)
		assert.Contains(t, env.Error.DebugMessage, "nope")
	})

	t.Run("suppressed status keeps the default", func(t *testing.T) {
		rec := httptest.NewRecorder()

		require.NoError(t, Write(rec, newStore(t), errstore.IntCode(1001), errstore.WithoutHTTPStatus()))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRouter(t *testing.T) {
	router := NewRouter(newStore(t))

	t.Run("export", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/errors", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			ErrorMetaMap map[string]json.RawMessage `json:"errorMetaMap"`
			ErrorCodes   map[string]json.RawMessage `json:"errorCodes"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.ErrorMetaMap, 5)
		assert.Equal(t, "1001", string(body.ErrorCodes["USER_NOT_FOUND"]))
		assert.Equal(t, "9999", string(body.ErrorCodes[errstore.NameUnknown]))
	})

	t.Run("known descriptor", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/errors/1001", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"USER_NOT_FOUND"`)
		assert.Contains(t, rec.Body.String(), `"debugMessage":""`)
	})

	t.Run("unknown descriptor", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/errors/4242", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), errstore.NameUnknown)
	})

	t.Run("method not allowed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/errors", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func unencodableStore(t *testing.T) *errstore.Store {
	t.Helper()
	s := errstore.New()
	s.MustRegister(errstore.NewDescriptor(errstore.IntCode(7), "BAD_DATA", http.StatusConflict,
		errstore.Text("debug"), errstore.Text("user")).
		WithData(map[any]any{1: "one"}))
	return s
}

func TestWrite_EncodeFailure(t *testing.T) {
	rec := httptest.NewRecorder()

	err := Write(rec, unencodableStore(t), errstore.IntCode(7))

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, encodeFailureBody, rec.Body.String())
}

func TestRouter_EncodeFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	router := NewRouter(unencodableStore(t), WithLogger(zap.New(core)))

	for _, path := range []string{"/errors", "/errors/7"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, encodeFailureBody, rec.Body.String())
		})
	}

	entries := logs.FilterMessage("Failed to encode error response").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "/errors", entries[0].ContextMap()["path"])
}

func TestResponseStatus(t *testing.T) {
	rec := httptest.NewRecorder()

	ResponseStatus(rec).EmitStatus(http.StatusTeapot)

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
