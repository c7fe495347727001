package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/scm/internal/input/keymap"
	scmlog "github.com/dshills/scm/internal/log"
)

const sample = `
[[layers]]
  [[layers.bindings]]
  keys = "Ctrl+S"
  action = "app.echo"
  default = true

  [[layers.bindings]]
  keys = "ctrl+s"
  action = "app.pass"

  [[layers.bindings]]
  keys = "ctrl+n"
  action = "layer.activate:nav"

[[layers]]
name = "nav"
  [[layers.bindings]]
  keys = "[1..3]"
  action = "app.echo"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNormalize(t *testing.T) {
	var out bytes.Buffer
	n := &Normalize{Shortcuts: []string{"Shift+Ctrl+A", "alt+x, Escape"}}
	require.NoError(t, n.Run(scmlog.Discard(), &out))

	lines := out.String()
	assert.Contains(t, lines, "ctrl+shift+a")
	assert.Contains(t, lines, "alt+x, esc")
}

func TestNormalizeExpand(t *testing.T) {
	var out bytes.Buffer
	n := &Normalize{Shortcuts: []string{"ctrl+[1..2], f1"}, Expand: true}
	require.NoError(t, n.Run(scmlog.Discard(), &out))

	s := out.String()
	assert.Contains(t, s, "ctrl+1")
	assert.Contains(t, s, "ctrl+2")
	assert.Contains(t, s, "f1")

	out.Reset()
	n = &Normalize{Shortcuts: []string{"[1..2]+[3..4]"}, Expand: true}
	err := n.Run(scmlog.Discard(), &out)
	assert.ErrorIs(t, err, keymap.ErrInvalidRange)
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.toml", sample)
	bad := writeFile(t, "bad.toml", `
[[layers]]
  [[layers.bindings]]
  keys = "ctrl+s"
  action = "app.ehco"
`)

	var out bytes.Buffer
	c := &Check{Files: []string{good}}
	require.NoError(t, c.Run(scmlog.Discard(), &out))
	assert.Contains(t, out.String(), "2 layers, 4 bindings, 6 shortcuts")

	out.Reset()
	c = &Check{Files: []string{good, bad}}
	err := c.Run(scmlog.Discard(), &out)
	require.ErrorIs(t, err, ErrInvalidBindings)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out.String(), "app.echo")
}

func TestList(t *testing.T) {
	path := writeFile(t, "keys.toml", sample)

	var out bytes.Buffer
	l := &List{Files: []string{path}}
	require.NoError(t, l.Run(scmlog.Discard(), &out))

	s := out.String()
	assert.Contains(t, s, "main")
	assert.Contains(t, s, "app.pass, app.echo (default)")
	assert.Contains(t, s, "layer.activate:nav")
	assert.Contains(t, s, "nav")
	assert.Contains(t, s, "3")

	out.Reset()
	l = &List{Files: []string{path}, Layer: "nav"}
	require.NoError(t, l.Run(scmlog.Discard(), &out))
	assert.NotContains(t, out.String(), "ctrl+s")
}

func TestListActions(t *testing.T) {
	path := writeFile(t, "keys.toml", sample)

	var out bytes.Buffer
	l := &List{Files: []string{path}, Actions: true}
	require.NoError(t, l.Run(scmlog.Discard(), &out))

	s := out.String()
	assert.Contains(t, s, "app.quit")
	assert.Contains(t, s, "layer.toggle:nav")
	assert.Contains(t, s, "Exit the interactive host")
}
