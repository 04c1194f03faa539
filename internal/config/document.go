package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of an override document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat accepts a format name such as "json", "yaml", "yml" or "toml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath derives the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// FormatFromContentType derives the format from an HTTP Content-Type header.
func FormatFromContentType(contentType string) (Format, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: content type %q", ErrUnsupportedFormat, contentType)
	}

	switch mediaType {
	case "application/json":
		return FormatJSON, nil
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return FormatYAML, nil
	case "application/toml", "text/toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: content type %q", ErrUnsupportedFormat, contentType)
	}
}

// DecodeOverride decodes an override document and checks it against the
// schema. An empty document is an empty override.
func DecodeOverride(data []byte, format Format) (PartialAppConfig, error) {
	tree, err := decodeTree(data, format)
	if err != nil {
		return PartialAppConfig{}, err
	}

	return ParseOverride(tree)
}

func decodeTree(data []byte, format Format) (map[string]any, error) {
	tree := make(map[string]any)
	if len(bytes.TrimSpace(data)) == 0 {
		return tree, nil
	}

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("error decoding json override: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("error decoding yaml override: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &tree); err != nil {
			return nil, fmt.Errorf("error decoding toml override: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return tree, nil
}

// Encode renders a resolved configuration in the given format. The output is
// a valid override document for [DecodeOverride].
func Encode(cfg AppConfig, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error encoding json config: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("error encoding yaml config: %w", err)
		}
		return data, nil
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, fmt.Errorf("error encoding toml config: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
