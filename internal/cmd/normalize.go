package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/dshills/scm/internal/input/key"
	"github.com/dshills/scm/internal/input/keymap"
)

// Normalize prints the canonical form of shortcuts.
type Normalize struct {
	Shortcuts []string `arg:"" name:"shortcut" help:"Shortcuts or patterns to normalize."`
	Expand    bool     `help:"Expand alternatives and ranges into single shortcuts." short:"x"`
}

// Run is called by Kong when the normalize command is executed.
func (n *Normalize) Run(logger *slog.Logger, out io.Writer) error {
	if !n.Expand {
		rows := make([][]string, 0, len(n.Shortcuts))
		for _, s := range n.Shortcuts {
			rows = append(rows, []string{dimStyle.Render(s), key.NormalizePattern(s)})
		}
		writeRows(out, rows)
		return nil
	}

	for _, s := range n.Shortcuts {
		pattern := key.NormalizePattern(s)
		expansions, err := keymap.Expand(pattern)
		if err != nil {
			logger.Debug("pattern does not expand", "pattern", s, "error", err)
			return fmt.Errorf("%s: %w", s, err)
		}

		fmt.Fprintln(out, headerStyle.Render(pattern))
		rows := [][]string{{dimStyle.Render("shortcut"), dimStyle.Render("index"), dimStyle.Render("low")}}
		for _, e := range expansions {
			rows = append(rows, []string{e.Shortcut, rangeValue(e.Modifier), rangeValue(e.RangeLow)})
		}
		writeRows(out, rows)
	}
	return nil
}

func rangeValue(v int) string {
	if v == keymap.NoModifier {
		return "-"
	}
	return strconv.Itoa(v)
}
