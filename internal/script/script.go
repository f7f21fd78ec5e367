package script

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// MaxScriptSize bounds a decoded script file
const MaxScriptSize = 4 * 1024 * 1024

// Format identifies a script encoding
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Script is an ordered list of tool calls
type Script struct {
	Name  string `yaml:"name" toml:"name" json:"name"`
	Calls []Call `yaml:"calls" toml:"calls" json:"calls"`
}

// Call is a single tool invocation
type Call struct {
	Tool   string                 `yaml:"tool" toml:"tool" json:"tool"`
	Label  string                 `yaml:"label" toml:"label" json:"label"`
	Params map[string]interface{} `yaml:"params" toml:"params" json:"params"`
}

// DisplayLabel returns the label, falling back to the tool id
func (c Call) DisplayLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return c.Tool
}

// Validate checks that every call names a tool
func (s *Script) Validate() error {
	if len(s.Calls) == 0 {
		return fmt.Errorf("script has no calls")
	}
	for i, call := range s.Calls {
		if strings.TrimSpace(call.Tool) == "" {
			return fmt.Errorf("call %d: tool is required", i)
		}
	}
	return nil
}

// DetectFormat maps a file name to its format, ignoring a trailing
// compression suffix
func DetectFormat(path string) (Format, error) {
	name := strings.ToLower(path)
	name = strings.TrimSuffix(name, ".gz")
	name = strings.TrimSuffix(name, ".zst")

	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported script format: %s", path)
	}
}

// Parse decodes a script
func Parse(data []byte, format Format) (*Script, error) {
	var s Script
	var err error

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &s)
	case FormatTOML:
		err = toml.Unmarshal(data, &s)
	case FormatJSON:
		err = sonic.Unmarshal(data, &s)
	default:
		return nil, fmt.Errorf("unsupported script format: %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s script: %w", format, err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses a script file. Compression is detected from
// content; the format comes from the extension, or from content when the
// extension is unknown.
func Load(path string) (*Script, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer file.Close()

	raw, err := io.ReadAll(io.LimitReader(file, MaxScriptSize+1))
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	if len(raw) > MaxScriptSize {
		return nil, fmt.Errorf("script %s exceeds %d bytes", path, MaxScriptSize)
	}

	data, err := decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if data, err = toUTF8(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	format, err := DetectFormat(path)
	if err != nil {
		sniffed, ok := sniffFormat(data)
		if !ok {
			return nil, err
		}
		format = sniffed
	}

	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = filepath.Base(path)
	}
	return s, nil
}

// Glob expands a doublestar pattern (e.g. scripts/**/*.yaml) to script
// paths in lexical order
func Glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob failed: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no scripts match %s", pattern)
	}
	sort.Strings(matches)
	return matches, nil
}
