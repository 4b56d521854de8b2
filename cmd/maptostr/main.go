package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/kolide/kit/logutil"
	"github.com/leo-stone-dot/map_to_str_go/maptostr"
	"github.com/peterbourgon/ff/v3"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type config struct {
	split     bool
	options   bool
	overrides []maptostr.Option
}

func main() {
	fs := flag.NewFlagSet("maptostr", flag.ExitOnError)

	var (
		flKeyVal  = fs.String("kv", maptostr.DefaultKeyValDelimiter, "Delimiter between a key and its value")
		flEntry   = fs.String("entry", maptostr.DefaultEntryDelimiter, "Delimiter between entries")
		flOptions = fs.Bool("options", false, "Read the input as an options document (src, keyValDelimiter, entryDelimiter)")
		flSplit   = fs.Bool("split", false, "Split a joined string back into a mapping and print it as YAML")
		flDebug   = fs.Bool("debug", false, "use a debug logger")
		_         = fs.String("config", "", "config file (optional)")
	)

	ffOpts := []ff.Option{
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
		ff.WithEnvVarPrefix("MAPTOSTR"),
	}

	if err := ff.Parse(fs, os.Args[1:], ffOpts...); err != nil {
		logger := logutil.NewCLILogger(true)
		logutil.Fatal(logger, "msg", "Error parsing flags", "err", err)
	}

	logger := logutil.NewCLILogger(*flDebug)

	cfg := config{
		split:   *flSplit,
		options: *flOptions,
	}

	// Only delimiters set on the command line, in the environment or in the
	// config file override the ones carried by an options document.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "kv":
			cfg.overrides = append(cfg.overrides, maptostr.WithKeyValDelimiter(*flKeyVal))
		case "entry":
			cfg.overrides = append(cfg.overrides, maptostr.WithEntryDelimiter(*flEntry))
		}
	})

	in, err := openInput(fs.Args())
	if err != nil {
		logutil.Fatal(logger, "msg", "Error opening input", "err", err)
	}

	if err := run(cfg, in, os.Stdout, logger); err != nil {
		logutil.Fatal(logger, "msg", "Error formatting input", "err", err)
	}
}

func openInput(args []string) (io.ReadCloser, error) {
	switch len(args) {
	case 0:
		return io.NopCloser(os.Stdin), nil
	case 1:
		f, err := os.Open(args[0])
		if err != nil {
			return nil, errors.Wrap(err, "open input file")
		}
		return f, nil
	default:
		return nil, errors.Errorf("expected at most one input file, got %d", len(args))
	}
}

// run owns in and closes it before returning.
func run(cfg config, in io.ReadCloser, out io.Writer, logger log.Logger) error {
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "read input")
	}

	if cfg.split {
		m, err := maptostr.StrToMap(strings.TrimRight(string(data), "\r\n"), cfg.overrides...)
		if err != nil {
			return errors.Wrap(err, "split input")
		}
		level.Debug(logger).Log("msg", "split input", "entries", len(m))

		doc, err := yaml.Marshal(m)
		if err != nil {
			return errors.Wrap(err, "encode mapping")
		}
		_, err = out.Write(doc)
		return err
	}

	var opts maptostr.Options
	if cfg.options {
		if opts, err = maptostr.ParseOptions(data); err != nil {
			return errors.Wrap(err, "parse options")
		}
		for _, o := range cfg.overrides {
			o(&opts)
		}
	} else {
		src, err := maptostr.ParseSource(data)
		if err != nil {
			return errors.Wrap(err, "parse source")
		}
		opts = maptostr.NewOptions(append([]maptostr.Option{maptostr.WithSource(src)}, cfg.overrides...)...)
	}

	level.Debug(logger).Log(
		"msg", "joining source",
		"entries", len(opts.Src.Entries()),
		"kv", opts.KeyValDelimiter,
		"entry", opts.EntryDelimiter,
	)

	// the record is passed field by field so an empty delimiter from the
	// document is kept rather than replaced by the default
	s, err := maptostr.MapToStr(opts.Src,
		maptostr.WithKeyValDelimiter(opts.KeyValDelimiter),
		maptostr.WithEntryDelimiter(opts.EntryDelimiter),
	)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, s)
	return err
}
