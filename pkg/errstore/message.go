package errstore

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Formatter builds a message from call-time arguments.
type Formatter func(args ...any) string

// Message is literal text, a list of lines, or a Formatter.
// The zero value is the empty text message.
type Message struct {
	text   string
	lines  []string
	format Formatter
}

// Text returns a literal message.
func Text(s string) Message {
	return Message{text: s}
}

// Lines returns a multi-line literal message.
func Lines(lines ...string) Message {
	return Message{lines: append([]string{}, lines...)}
}

// Format returns a message computed by f at lookup time.
func Format(f Formatter) Message {
	if f == nil {
		return Message{}
	}
	return Message{format: f}
}

// Sprintf returns a formatter message applying fmt.Sprintf to layout.
// Without arguments the layout is returned verbatim.
func Sprintf(layout string) Message {
	return Format(func(args ...any) string {
		if len(args) == 0 {
			return layout
		}
		return fmt.Sprintf(layout, args...)
	})
}

// IsFormatter reports whether the message still needs to be resolved.
func (m Message) IsFormatter() bool {
	return m.format != nil
}

// IsLines reports whether the message is a list of lines.
func (m Message) IsLines() bool {
	return m.format == nil && m.lines != nil
}

// Lines returns a copy of the message lines, or nil for text and formatter
// messages.
func (m Message) Lines() []string {
	if !m.IsLines() {
		return nil
	}
	return append([]string{}, m.lines...)
}

// Resolve invokes the formatter with args. Literal messages are returned
// unchanged.
func (m Message) Resolve(args ...any) Message {
	if m.format != nil {
		return Text(m.format(args...))
	}
	if m.lines != nil {
		return Lines(m.lines...)
	}
	return m
}

// String returns the literal text, the lines joined by a space, or ""
// for an unresolved formatter.
func (m Message) String() string {
	switch {
	case m.format != nil:
		return ""
	case m.lines != nil:
		return strings.Join(m.lines, " ")
	default:
		return m.text
	}
}

// MarshalJSON never exposes a formatter: it encodes as "".
func (m Message) MarshalJSON() ([]byte, error) {
	if m.IsLines() {
		return json.Marshal(m.lines)
	}
	return json.Marshal(m.String())
}
