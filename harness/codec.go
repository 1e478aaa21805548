package harness

import (
	"fmt"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format selects a report encoding.
type Format string

// Supported report formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatText Format = "text"
)

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatTOML}
}

// ParseFormat maps a case-insensitive name ("yml" is accepted) to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatJSON, FormatYAML, FormatTOML, FormatText:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Codec encodes reports. Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Name() string
}

// CodecByName returns the structured codec for f. FormatText has no codec;
// it is rendered by Report.Encode directly.
func CodecByName(f Format) (Codec, bool) {
	switch f {
	case FormatJSON:
		return JSON{}, true
	case FormatYAML:
		return YAML{}, true
	case FormatTOML:
		return TOML{}, true
	default:
		return nil, false
	}
}

// JSON is an indented JSON codec backed by github.com/goccy/go-json.
type JSON struct{}

// Marshal encodes v as indented JSON with a trailing newline.
func (JSON) Marshal(v any) ([]byte, error) {
	b, err := gojson.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

// Name returns "json".
func (JSON) Name() string { return string(FormatJSON) }

// YAML is a codec backed by gopkg.in/yaml.v3.
type YAML struct{}

// Marshal encodes v as YAML.
func (YAML) Marshal(v any) ([]byte, error) { return yaml.Marshal(v) }

// Name returns "yaml".
func (YAML) Name() string { return string(FormatYAML) }

// TOML is a codec backed by github.com/pelletier/go-toml/v2.
type TOML struct{}

// Marshal encodes v as TOML.
func (TOML) Marshal(v any) ([]byte, error) { return toml.Marshal(v) }

// Name returns "toml".
func (TOML) Name() string { return string(FormatTOML) }
