package maptostr

import (
	"strings"

	"github.com/pkg/errors"
)

// StrToMap is the inverse of MapToStr. It splits s with the default
// delimiters, overridden by opts:
// - Entries are split on EntryDelimiter; empty entries are ignored
// - Each entry is split once on the first KeyValDelimiter; an entry without it yields an empty value
// - Duplicate keys: last wins, the key keeps its first position
// - Values are strings
//
// Src is ignored. Both delimiters must be non-empty.
func StrToMap(s string, opts ...Option) (Map, error) {
	o := NewOptions(opts...)
	if o.EntryDelimiter == "" {
		return nil, errors.Wrap(ErrInvalidDelimiter, "entry delimiter is empty")
	}
	if o.KeyValDelimiter == "" {
		return nil, errors.Wrap(ErrInvalidDelimiter, "key/value delimiter is empty")
	}

	out := Map{}
	if s == "" {
		return out, nil
	}

	for _, raw := range strings.Split(s, o.EntryDelimiter) {
		if raw == "" {
			// leading, trailing or doubled entry delimiters
			continue
		}
		k, v, _ := splitPair(raw, o.KeyValDelimiter)
		out.Set(k, v)
	}

	return out, nil
}

// splitPair splits a raw entry into key and value, only on the first delim.
// Returns key, value, and a boolean indicating if delim existed.
func splitPair(s, delim string) (string, string, bool) {
	if i := strings.Index(s, delim); i >= 0 {
		return s[:i], s[i+len(delim):], true
	}
	return s, "", false
}
