package layered

import "fmt"

// LoadError reports a source that could not be read or parsed.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// MergeError reports an overlay whose shape does not fit the value it replaces.
type MergeError struct {
	Source string
	Key    string
	Err    error
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("merge %s: key %q: %v", e.Source, e.Key, e.Err)
}

func (e *MergeError) Unwrap() error { return e.Err }

// DecodeError reports a merged tree that cannot populate its target.
type DecodeError struct {
	Target string
	Field  string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode %s: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("decode %s: field %q: %v", e.Target, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
