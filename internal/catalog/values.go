package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"errstore/pkg/errstore"
)

// codeValue decodes an integer or string YAML scalar.
type codeValue struct {
	errstore.Code
}

func (c *codeValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: code must be a scalar", node.Line)
	}
	if node.Tag == "!!int" {
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("line %d: invalid integer code %q: %w", node.Line, node.Value, err)
		}
		c.Code = errstore.IntCode(n)
		return nil
	}
	c.Code = errstore.StringCode(node.Value)
	return nil
}

// messageValue decodes one of:
//
//	debug: "literal text"
//	debug: ["line one", "line two"]
//	debug: {format: "user %v not found"}
type messageValue struct {
	text   string
	lines  []string
	format string
}

func (m *messageValue) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		m.text = node.Value
		return nil
	case yaml.SequenceNode:
		var lines []string
		if err := node.Decode(&lines); err != nil {
			return err
		}
		m.lines = lines
		if m.lines == nil {
			m.lines = []string{}
		}
		return nil
	case yaml.MappingNode:
		var body struct {
			Format string `yaml:"format"`
		}
		if err := node.Decode(&body); err != nil {
			return err
		}
		if body.Format == "" {
			return fmt.Errorf("line %d: message mapping requires a format", node.Line)
		}
		m.format = body.Format
		return nil
	}
	return fmt.Errorf("line %d: unsupported message", node.Line)
}

func (m messageValue) message(translate Translator) errstore.Message {
	tr := func(s string) string {
		if translate == nil {
			return s
		}
		return translate(s)
	}
	switch {
	case m.format != "":
		return errstore.Sprintf(tr(m.format))
	case m.lines != nil:
		lines := make([]string, 0, len(m.lines))
		for _, line := range m.lines {
			lines = append(lines, tr(line))
		}
		return errstore.Lines(lines...)
	default:
		return errstore.Text(tr(m.text))
	}
}

// dataValue decodes arbitrary YAML into values encoding/json accepts.
// Mapping keys are stringified, so {1: one} becomes {"1": "one"}.
type dataValue struct {
	value any
}

func (d *dataValue) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	d.value = jsonSafe(raw)
	return nil
}

func jsonSafe(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = jsonSafe(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = jsonSafe(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = jsonSafe(val)
		}
		return out
	}
	return v
}
