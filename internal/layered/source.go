// Package layered builds configuration trees from an ordered list of sources.
// Each source yields a partial tree; Merge folds them left to right so later
// sources win, and Decode turns the result into a typed value.
package layered

import "strings"

// Source produces one overlay of a configuration tree.
type Source interface {
	Name() string
	Load() (map[string]any, error)
}

// Defaults is a source of fixed values keyed by dotted paths.
type Defaults map[string]any

// Name implements Source.
func (d Defaults) Name() string { return "defaults" }

// Load implements Source.
func (d Defaults) Load() (map[string]any, error) {
	tree := make(map[string]any)
	for key, value := range d {
		setPath(tree, strings.Split(key, "."), value)
	}
	return tree, nil
}

// setPath stores value at path, creating intermediate tables. A scalar found
// on the way is replaced by a table.
func setPath(tree map[string]any, path []string, value any) {
	node := tree
	for _, segment := range path[:len(path)-1] {
		next, ok := node[segment].(map[string]any)
		if !ok {
			next = make(map[string]any)
			node[segment] = next
		}
		node = next
	}
	node[path[len(path)-1]] = value
}
