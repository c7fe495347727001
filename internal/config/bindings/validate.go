package bindings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/scm/internal/input/key"
	"github.com/dshills/scm/internal/input/keymap"
)

// Issue is a single problem found in a binding file.
type Issue struct {
	Layer string
	// Index is the position of the binding within its layer.
	Index int
	Keys  string
	Err   error
}

func (i Issue) String() string {
	return fmt.Sprintf("layer %s binding %d (%s): %v", i.Layer, i.Index+1, i.Keys, i.Err)
}

// ValidationError lists every problem found in a binding file.
type ValidationError struct {
	Path   string
	Issues []Issue
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d invalid binding", e.Path, len(e.Issues))
	if len(e.Issues) != 1 {
		b.WriteString("s")
	}
	for _, issue := range e.Issues {
		b.WriteString("\n  ")
		b.WriteString(issue.String())
	}
	return b.String()
}

// Unwrap returns the error of every issue.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Issues))
	for i, issue := range e.Issues {
		errs[i] = issue.Err
	}
	return errs
}

// Validate checks that every pattern expands and every action exists in
// catalog. A nil catalog skips the action check. Two default bindings for
// the same shortcut within a layer are reported as well.
func (f *File) Validate(catalog *Catalog) error {
	var issues []Issue
	defaults := make(map[string]map[string]bool)

	for _, l := range f.Layers {
		layerName := l.Key().String()
		if defaults[layerName] == nil {
			defaults[layerName] = make(map[string]bool)
		}

		for i, b := range l.Bindings {
			report := func(err error) {
				issues = append(issues, Issue{Layer: layerName, Index: i, Keys: b.Keys, Err: err})
			}

			shortcuts, err := keymap.Shortcuts(key.NormalizePattern(b.Keys))
			if err != nil {
				report(err)
			}

			if catalog != nil {
				if err := checkAction(catalog, b.Action); err != nil {
					report(err)
				}
			}

			if b.Default {
				for _, sc := range shortcuts {
					if defaults[layerName][sc] {
						report(fmt.Errorf("%w for shortcut %s", keymap.ErrDuplicateDefault, sc))
						continue
					}
					defaults[layerName][sc] = true
				}
			}
		}
	}

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Path: f.Path, Issues: issues}
}

func checkAction(catalog *Catalog, name string) error {
	if name == "" {
		return errors.New("action is empty")
	}
	if _, ok := catalog.Lookup(name); ok {
		return nil
	}
	if suggestion, ok := catalog.Suggest(name); ok {
		return fmt.Errorf("%w %q, did you mean %q?", ErrUnknownAction, name, suggestion)
	}
	return fmt.Errorf("%w %q", ErrUnknownAction, name)
}
