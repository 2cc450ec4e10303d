package errstore

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_Resolve(t *testing.T) {
	t.Run("text passes through", func(t *testing.T) {
		m := Text("static").Resolve("ignored")
		assert.Equal(t, "static", m.String())
		assert.False(t, m.IsFormatter())
	})

	t.Run("lines pass through", func(t *testing.T) {
		m := Lines("first", "second").Resolve()
		assert.True(t, m.IsLines())
		assert.Equal(t, []string{"first", "second"}, m.Lines())
		assert.Equal(t, "first second", m.String())
	})

	t.Run("formatter is invoked with args", func(t *testing.T) {
		var got []any
		m := Format(func(args ...any) string {
			got = args
			return "formatted"
		})
		resolved := m.Resolve("a", 1)
		assert.Equal(t, []any{"a", 1}, got)
		assert.Equal(t, "formatted", resolved.String())
		assert.False(t, resolved.IsFormatter())
	})

	t.Run("sprintf", func(t *testing.T) {
		m := Sprintf("user %v not found")
		assert.Equal(t, "user 42 not found", m.Resolve(42).String())
		assert.Equal(t, "user %v not found", m.Resolve().String())
	})
}

func TestMessage_FormatNil(t *testing.T) {
	m := Format(nil)
	assert.False(t, m.IsFormatter())
	assert.Equal(t, "", m.String())
}

func TestMessage_UnresolvedFormatterString(t *testing.T) {
	assert.Equal(t, "", Sprintf("x %v").String())
}

func TestMessage_LinesAreCopied(t *testing.T) {
	lines := []string{"a", "b"}
	m := Lines(lines...)
	lines[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, m.Lines())

	out := m.Lines()
	out[1] = "mutated"
	assert.Equal(t, []string{"a", "b"}, m.Lines())
}

func TestMessage_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{name: "text", msg: Text("hello"), want: `"hello"`},
		{name: "lines", msg: Lines("a", "b"), want: `["a","b"]`},
		{name: "formatter", msg: Sprintf("secret %v"), want: `""`},
		{name: "zero", msg: Message{}, want: `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.msg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
			assert.False(t, strings.Contains(string(data), "func"))
		})
	}
}
