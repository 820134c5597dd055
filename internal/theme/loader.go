package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for document formats the loader cannot read.
var ErrUnsupportedFormat = errors.New("unsupported theme format")

// Format identifies a theme document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
	FormatCSS  Format = "css"
)

// fontSizePrefix marks typography size keys in the text format and in overrides.
const fontSizePrefix = "font-size."

// DetectFormat picks a format from a file extension. Unknown extensions use
// the line-based text format.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".css":
		return FormatCSS
	default:
		return FormatText
	}
}

// Load reads a single theme document from disk.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified theme file, intended to be read
	if err != nil {
		return nil, err
	}

	preset, err := Parse(data, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if preset.ID == "" {
		preset.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return preset, nil
}

// Parse decodes a single theme document.
func Parse(data []byte, format Format) (*Preset, error) {
	var preset Preset
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&preset); err != nil {
			return nil, fmt.Errorf("invalid JSON theme: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &preset); err != nil {
			return nil, fmt.Errorf("invalid YAML theme: %w", err)
		}
	case FormatText:
		p, err := parseTextFormat(string(data))
		if err != nil {
			return nil, err
		}
		preset = *p
	case FormatCSS:
		p, err := parseCSS(string(data))
		if err != nil {
			return nil, err
		}
		preset = *p
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return &preset, nil
}

// LoadPresets reads a catalog file holding a JSON or YAML list of presets.
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified catalog file, intended to be read
	if err != nil {
		return nil, err
	}

	var presets []Preset
	switch DetectFormat(path) {
	case FormatJSON:
		if err := json.Unmarshal(data, &presets); err != nil {
			return nil, fmt.Errorf("invalid JSON preset catalog %s: %w", path, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &presets); err != nil {
			return nil, fmt.Errorf("invalid YAML preset catalog %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: preset catalogs must be .json, .yaml or .yml (got %s)", ErrUnsupportedFormat, path)
	}

	for i := range presets {
		if presets[i].ID == "" {
			presets[i].ID = fmt.Sprintf("preset-%d", i+1)
		}
	}
	return presets, nil
}

// parseTextFormat parses the line-based theme format.
// Format: key=value (one per line), # for comments. Keys are colour roles,
// name, font-family, heading-font or font-size.<key>.
func parseTextFormat(content string) (*Preset, error) {
	preset := &Preset{}

	lines := strings.Split(content, "\n")
	for lineNum, line := range lines {
		line = strings.TrimSpace(line)

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: invalid format, expected 'key=value'", lineNum+1)
		}

		if err := applySetting(preset, strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
	}

	return preset, nil
}

// ApplyOverrides applies key=value overrides (as given on the command line)
// on top of preset.
func ApplyOverrides(preset *Preset, overrides []string) error {
	for _, override := range overrides {
		parts := strings.SplitN(override, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid override format '%s': expected 'key=value'", override)
		}
		if err := applySetting(preset, strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])); err != nil {
			return err
		}
	}
	return nil
}

// SetFontSize records a font size, initialising the map if needed.
func (t *TypographyConfig) SetFontSize(key, value string) {
	if t.FontSizes == nil {
		t.FontSizes = make(map[string]string)
	}
	t.FontSizes[key] = value
}

func applySetting(preset *Preset, key, value string) error {
	lower := strings.ToLower(key)
	switch {
	case lower == "name":
		preset.Name = value
		return nil
	case lower == "id":
		preset.ID = value
		return nil
	case lower == "font-family" || lower == "fontfamily":
		preset.Typography.FontFamily = value
		return nil
	case lower == "heading-font" || lower == "headingfont":
		v := value
		preset.Typography.HeadingFont = &v
		return nil
	case strings.HasPrefix(lower, fontSizePrefix):
		sizeKey := key[len(fontSizePrefix):]
		if sizeKey == "" {
			return fmt.Errorf("missing size key in '%s'", key)
		}
		preset.Typography.SetFontSize(sizeKey, value)
		return nil
	}

	role, err := ParseRole(key)
	if err != nil {
		return err
	}
	return preset.Colors.Set(role, value)
}
