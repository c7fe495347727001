package bindings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/scm/internal/config"
	"github.com/dshills/scm/internal/input/key"
	"github.com/dshills/scm/internal/input/keymap"
	"github.com/dshills/scm/internal/input/layer"
)

// Format is a binding file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor returns the format matching the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", config.ErrUnsupportedFormat, path)
	}
}

// File is a parsed binding file.
type File struct {
	// Path is the file the bindings were read from.
	Path   string  `toml:"-" yaml:"-"`
	Layers []Layer `toml:"layers" yaml:"layers"`
}

// Layer groups the bindings of one layer. An empty name is the main layer.
type Layer struct {
	Name     string    `toml:"name" yaml:"name"`
	Bindings []Binding `toml:"bindings" yaml:"bindings"`
}

// Key returns the layer key.
func (l Layer) Key() layer.Key {
	return layer.Name(l.Name)
}

// Binding maps a shortcut pattern to an action.
type Binding struct {
	Keys        string `toml:"keys" yaml:"keys"`
	Action      string `toml:"action" yaml:"action"`
	Default     bool   `toml:"default,omitempty" yaml:"default,omitempty"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
}

// Load reads and parses a binding file, picking the decoder by extension.
func Load(path string) (*File, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", config.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading bindings %s: %w", path, err)
	}
	return Parse(path, format, data)
}

// Parse decodes binding file data. Unknown fields are rejected.
func Parse(source string, format Format, data []byte) (*File, error) {
	f := &File{Path: source}

	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(f); err != nil {
			return nil, tomlError(source, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
			return nil, yamlError(source, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnsupportedFormat, format)
	}

	f.Path = source
	return f, nil
}

func tomlError(source string, err error) error {
	pe := config.NewParseError(string(FormatTOML), source, err)

	var decErr *toml.DecodeError
	if errors.As(err, &decErr) {
		pe.Line, pe.Column = decErr.Position()
		return pe
	}
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) && len(strictErr.Errors) > 0 {
		first := strictErr.Errors[0]
		pe.Line, pe.Column = first.Position()
		pe.Message = "unknown field " + strings.Join(first.Key(), ".")
	}
	return pe
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

func yamlError(source string, err error) error {
	pe := config.NewParseError(string(FormatYAML), source, err)
	if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
	}
	return pe
}

// Entry is one binding with its expanded shortcuts.
type Entry struct {
	Layer     string
	Pattern   string
	Shortcuts []string
	Action    string
	Default   bool
}

// Entries lists every binding of the file in order. Bindings whose
// pattern does not expand are listed without shortcuts.
func (f *File) Entries() []Entry {
	var out []Entry
	for _, l := range f.Layers {
		for _, b := range l.Bindings {
			pattern := key.NormalizePattern(b.Keys)
			shortcuts, _ := keymap.Shortcuts(pattern)
			out = append(out, Entry{
				Layer:     l.Key().String(),
				Pattern:   pattern,
				Shortcuts: shortcuts,
				Action:    b.Action,
				Default:   b.Default,
			})
		}
	}
	return out
}

// LayerNames returns the distinct layer names used by the file, in order.
func (f *File) LayerNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, l := range f.Layers {
		name := l.Key().String()
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// BindingCount returns the number of bindings in the file.
func (f *File) BindingCount() int {
	n := 0
	for _, l := range f.Layers {
		n += len(l.Bindings)
	}
	return n
}

func layerKey(name string) layer.Key {
	return layer.Name(name)
}
