package layered

import (
	"fmt"
	"sort"
)

// Merge loads every source in order and folds the overlays into one tree.
// Tables merge recursively; scalars and lists are replaced whole. Nil values
// leave the existing value untouched.
func Merge(sources ...Source) (map[string]any, error) {
	merged := make(map[string]any)
	for _, src := range sources {
		layer, err := src.Load()
		if err != nil {
			return nil, err
		}
		if err := overlay(merged, layer, src.Name(), ""); err != nil {
			return nil, err
		}
	}
	return merged, nil
}

func overlay(dst, src map[string]any, source, prefix string) error {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		value := src[k]
		if value == nil {
			continue
		}

		path := k
		if prefix != "" {
			path = prefix + "." + k
		}

		incoming, incomingIsTable := asTable(value)
		current, exists := dst[k]
		if !exists || current == nil {
			if incomingIsTable {
				fresh := make(map[string]any)
				if err := overlay(fresh, incoming, source, path); err != nil {
					return err
				}
				dst[k] = fresh
			} else {
				dst[k] = value
			}
			continue
		}

		existing, existingIsTable := asTable(current)
		switch {
		case incomingIsTable && existingIsTable:
			if err := overlay(existing, incoming, source, path); err != nil {
				return err
			}
			dst[k] = existing
		case incomingIsTable:
			return &MergeError{Source: source, Key: path, Err: fmt.Errorf("table cannot replace %T value", current)}
		case existingIsTable:
			return &MergeError{Source: source, Key: path, Err: fmt.Errorf("%T value cannot replace table", value)}
		default:
			dst[k] = value
		}
	}
	return nil
}

func asTable(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}
