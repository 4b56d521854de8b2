package maptostr

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// MapToStr joins src using the default delimiters, overridden by opts:
// - Each entry is rendered as key + KeyValDelimiter + value
// - Entries are separated by EntryDelimiter, with no trailing delimiter
// - Values use their default string form (fmt.Sprint)
//
// Delimiters set through opts are used as given, so WithEntryDelimiter("")
// joins entries with nothing between them.
func MapToStr(src Source, opts ...Option) (string, error) {
	return join(NewOptions(append([]Option{WithSource(src)}, opts...)...))
}

// MapToStrWithOptions is like MapToStr but takes an Options record.
// Empty delimiters in the record fall back to the defaults.
func MapToStrWithOptions(opts Options) (string, error) {
	return join(withDefaults(opts))
}

// Format is the single-argument entry point. The argument decides the call shape:
// - Options or *Options: an options record, empty delimiters filled from the defaults
// - []Option: partial options merged over the defaults
// - Source (including Map) or any map with string keys: the bare-mapping shorthand
//
// Any other argument fails with ErrInvalidSource; zero or several arguments
// fail with ErrInvalidArgumentCount.
func Format(args ...any) (string, error) {
	if err := assertArgCount(args, 1); err != nil {
		return "", err
	}

	switch v := args[0].(type) {
	case Options:
		return MapToStrWithOptions(v)
	case *Options:
		if v == nil {
			return "", errors.Wrap(ErrInvalidSource, "nil options")
		}
		return MapToStrWithOptions(*v)
	case []Option:
		return join(NewOptions(v...))
	case Source:
		return MapToStr(v)
	case map[string]any:
		return MapToStr(FromMap(v))
	case map[string]string:
		return MapToStr(FromMap(v))
	case nil:
		return "", errors.Wrap(ErrInvalidSource, "nil argument")
	default:
		m, ok := reflectMap(v)
		if !ok {
			return "", errors.Wrapf(ErrInvalidSource, "cannot read %T as key/value entries", v)
		}
		return MapToStr(m)
	}
}

func join(opts Options) (string, error) {
	if opts.Src == nil {
		return "", errors.Wrap(ErrInvalidSource, "src is required")
	}

	var b strings.Builder
	for _, e := range opts.Src.Entries() {
		b.WriteString(e.Key)
		b.WriteString(opts.KeyValDelimiter)
		b.WriteString(fmt.Sprint(e.Value))
		b.WriteString(opts.EntryDelimiter)
	}

	return trimEntryDelimiter(b.String(), opts.EntryDelimiter), nil
}

func withDefaults(opts Options) Options {
	if opts.KeyValDelimiter == "" {
		opts.KeyValDelimiter = DefaultKeyValDelimiter
	}
	if opts.EntryDelimiter == "" {
		opts.EntryDelimiter = DefaultEntryDelimiter
	}
	return opts
}

// reflectMap adapts any map keyed by a string kind, ordering keys like FromMap.
func reflectMap(v any) (Map, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}

	keys := rv.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) bool {
		return a.String() < b.String()
	})

	out := make(Map, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Key: k.String(), Value: rv.MapIndex(k).Interface()})
	}
	return out, true
}

// trimEntryDelimiter drops exactly one trailing delim. An empty delim is a no-op.
func trimEntryDelimiter(s, delim string) string {
	if delim == "" || !strings.HasSuffix(s, delim) {
		return s
	}
	return s[:len(s)-len(delim)]
}

func assertArgCount(args []any, want int) error {
	if len(args) != want {
		return errors.Wrapf(ErrInvalidArgumentCount, "got %d arguments", len(args))
	}
	return nil
}
