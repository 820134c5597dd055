package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats shared by the reporting commands.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// marshal renders v as JSON or YAML.
func marshal(v any, format string) (string, error) {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	case formatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("failed to convert to YAML: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: text, json, yaml)", format)
	}
}

// writeOutput writes to path, or to w when path is empty.
func writeOutput(w io.Writer, path, output string) error {
	if path == "" {
		_, err := io.WriteString(w, output)
		return err
	}
	if err := os.WriteFile(path, []byte(output), 0o644); err != nil { // #nosec G306 - reports are not sensitive
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
