package layer

import (
	"slices"
	"strings"
)

// MainName is the name of the main layer.
const MainName = "main"

// PathSeparator joins node segments in a structural layer key.
const PathSeparator = "/"

// Key identifies a layer.
type Key struct {
	name string
}

// Main is the key of the main layer.
var Main = Key{name: MainName}

// Name returns a key for a literal layer name.
// An empty name refers to the main layer.
func Name(name string) Key {
	name = strings.TrimSpace(name)
	if name == "" {
		return Main
	}
	return Key{name: name}
}

// Node is a DOM-like element with an ancestry.
// The root node returns nil from ParentNode.
type Node interface {
	// LayerSegment returns the path segment contributed by this node.
	LayerSegment() string
	// ParentNode returns the enclosing node, or nil.
	ParentNode() Node
}

// FromNode returns a key derived from the ancestry of n.
// Segments are joined from the root to n. Empty segments are skipped.
// A nil node, or one with no segments, refers to the main layer.
func FromNode(n Node) Key {
	var segments []string
	for cur := n; cur != nil; cur = cur.ParentNode() {
		if seg := strings.TrimSpace(cur.LayerSegment()); seg != "" {
			segments = append(segments, seg)
		}
	}
	if len(segments) == 0 {
		return Main
	}
	slices.Reverse(segments)
	return Key{name: strings.Join(segments, PathSeparator)}
}

// String returns the layer name.
func (k Key) String() string {
	if k.name == "" {
		return MainName
	}
	return k.name
}

// IsMain reports whether k refers to the main layer.
func (k Key) IsMain() bool {
	return k.name == "" || k.name == MainName
}
