package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"errstore/internal/config"
)

// writeEncoded writes v as indented JSON or as YAML. YAML goes through
// the JSON encoding so the wire field names are kept.
func writeEncoded(w io.Writer, format string, v any) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case config.FormatYAML:
		data, err = yaml.Marshal(v)
	default:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return wrapWithSentinel(ErrEncodeOutputFailed, err, fmt.Sprintf("failed to encode output: %v", err))
	}
	_, err = w.Write(data)
	return err
}
