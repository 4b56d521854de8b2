package maptostr

// Options defines the full configuration of a single MapToStr call.
//
// Src: the mapping to join. Required.
// KeyValDelimiter: inserted between a key and its value. Defaults to ":".
// EntryDelimiter: inserted between successive entries. Defaults to ";".
//
// Note: MapToStrWithOptions uses the record exactly as given, so an empty
// delimiter is a legitimate value there. Build records with NewOptions to get
// the defaults filled in.
type Options struct {
	Src             Source
	KeyValDelimiter string
	EntryDelimiter  string
}

const (
	DefaultKeyValDelimiter = ":"
	DefaultEntryDelimiter  = ";"
)

// DefaultOptions returns a fresh copy of the defaults used by MapToStr.
func DefaultOptions() Options {
	return Options{
		KeyValDelimiter: DefaultKeyValDelimiter,
		EntryDelimiter:  DefaultEntryDelimiter,
	}
}

// Option overrides a single field of the defaults.
type Option func(*Options)

// WithSource sets the mapping to join.
func WithSource(src Source) Option {
	return func(o *Options) {
		o.Src = src
	}
}

// WithKeyValDelimiter sets the key/value delimiter. An empty string is kept.
func WithKeyValDelimiter(d string) Option {
	return func(o *Options) {
		o.KeyValDelimiter = d
	}
}

// WithEntryDelimiter sets the entry delimiter. An empty string is kept.
func WithEntryDelimiter(d string) Option {
	return func(o *Options) {
		o.EntryDelimiter = d
	}
}

// NewOptions merges opts over a copy of the defaults. Options given later win.
func NewOptions(opts ...Option) Options {
	return mergeOptions(DefaultOptions(), opts)
}

func mergeOptions(base Options, opts []Option) Options {
	for _, opt := range opts {
		if opt != nil {
			opt(&base)
		}
	}
	return base
}
