package keymap

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// alternativeSeparator separates alternatives in a multi-shortcut pattern.
const alternativeSeparator = ", "

// MaxRangeSize is the largest number of shortcuts a single range may
// expand to.
const MaxRangeSize = 1024

// rangePattern matches a bracketed "[low..high]" token.
var rangePattern = regexp.MustCompile(`\[([^\[\]]*)\.\.([^\[\]]*)\]`)

// Expansion is one canonical shortcut produced from a pattern.
type Expansion struct {
	Shortcut string
	Modifier int
	RangeLow int
}

// Expand resolves a pattern into the shortcuts it denotes.
//
// Alternatives are separated by ", ". An alternative may contain one
// "[low..high]" range, which expands to one shortcut per integer in the
// inclusive bound. Expansions keep pattern order and are not deduplicated.
func Expand(pattern string) ([]Expansion, error) {
	var out []Expansion
	for _, alt := range strings.Split(pattern, alternativeSeparator) {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			continue
		}

		exp, err := expandAlternative(alt)
		if err != nil {
			return nil, err
		}
		out = append(out, exp...)
	}

	if len(out) == 0 {
		return nil, ErrEmptyPattern
	}
	return out, nil
}

// expandAlternative expands a single alternative.
func expandAlternative(alt string) ([]Expansion, error) {
	matches := rangePattern.FindAllStringSubmatchIndex(alt, -1)
	switch len(matches) {
	case 0:
		return []Expansion{{Shortcut: alt, Modifier: NoModifier, RangeLow: NoModifier}}, nil
	case 1:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidRange, alt)
	}

	m := matches[0]
	prefix, suffix := alt[:m[0]], alt[m[1]:]

	low, errLow := strconv.Atoi(strings.TrimSpace(alt[m[2]:m[3]]))
	high, errHigh := strconv.Atoi(strings.TrimSpace(alt[m[4]:m[5]]))
	if errLow != nil || errHigh != nil || low < 0 || low > high {
		return nil, fmt.Errorf("%w: %q", ErrEmptyRange, alt)
	}
	if high-low >= MaxRangeSize {
		return nil, fmt.Errorf("%w: %q spans more than %d values", ErrRangeTooLarge, alt, MaxRangeSize)
	}

	out := make([]Expansion, 0, high-low+1)
	for i := low; i <= high; i++ {
		out = append(out, Expansion{
			Shortcut: prefix + strconv.Itoa(i) + suffix,
			Modifier: i,
			RangeLow: low,
		})
	}
	return out, nil
}

// Shortcuts returns the distinct shortcuts a pattern expands to, in order.
func Shortcuts(pattern string) ([]string, error) {
	exp, err := Expand(pattern)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(exp))
	out := make([]string, 0, len(exp))
	for _, e := range exp {
		if !seen[e.Shortcut] {
			seen[e.Shortcut] = true
			out = append(out, e.Shortcut)
		}
	}
	return out, nil
}
