package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/leo-stone-dot/map_to_str_go/maptostr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name string
		cfg  config
		in   string
		out  string
	}{
		{
			name: "bare source",
			in:   "a: 1\nb: 2\nc: 3\n",
			out:  "a:1;b:2;c:3\n",
		},
		{
			name: "bare source with flag delimiters",
			cfg:  config{overrides: []maptostr.Option{maptostr.WithKeyValDelimiter("="), maptostr.WithEntryDelimiter("&")}},
			in:   `{"x": "y", "a": 1}`,
			out:  "x=y&a=1\n",
		},
		{
			name: "options document",
			cfg:  config{options: true},
			in:   "src: {a: 1, b: 2}\nkeyValDelimiter: '='\nentryDelimiter: ','\n",
			out:  "a=1,b=2\n",
		},
		{
			name: "flag overrides options document",
			cfg:  config{options: true, overrides: []maptostr.Option{maptostr.WithEntryDelimiter(" ")}},
			in:   "src: {a: 1, b: 2}\nkeyValDelimiter: '='\nentryDelimiter: ','\n",
			out:  "a=1 b=2\n",
		},
		{
			name: "empty entry delimiter in options document",
			cfg:  config{options: true},
			in:   `{"src": {"a": 1, "b": 2}, "keyValDelimiter": "=", "entryDelimiter": ""}`,
			out:  "a=1b=2\n",
		},
		{
			name: "document scalar text kept",
			in:   "ratio: 1.0\nmask: 0x10\n",
			out:  "ratio:1.0;mask:0x10\n",
		},
		{
			name: "split",
			cfg:  config{split: true},
			in:   "b:x;a:y\n",
			out:  "b: x\na: y\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			require.NoError(t, run(tt.cfg, io.NopCloser(strings.NewReader(tt.in)), &out, log.NewNopLogger()))
			assert.Equal(t, tt.out, out.String())
		})
	}
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	err := run(config{options: true}, io.NopCloser(strings.NewReader("src: {a: 1}\nbogus: 1\n")), &out, log.NewNopLogger())
	assert.ErrorIs(t, err, maptostr.ErrUnknownOption)

	err = run(config{}, io.NopCloser(strings.NewReader("a: [1, 2]\n")), &out, log.NewNopLogger())
	assert.ErrorIs(t, err, maptostr.ErrInvalidSource)

	err = run(config{split: true, overrides: []maptostr.Option{maptostr.WithEntryDelimiter("")}}, io.NopCloser(strings.NewReader("a:1")), &out, log.NewNopLogger())
	assert.ErrorIs(t, err, maptostr.ErrInvalidDelimiter)

	assert.Empty(t, out.String())
}

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestRunClosesInput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	ok := &closeRecorder{Reader: strings.NewReader("a: 1\n")}
	require.NoError(t, run(config{}, ok, &out, log.NewNopLogger()))
	assert.True(t, ok.closed)

	bad := &closeRecorder{Reader: strings.NewReader("a: [1]\n")}
	require.Error(t, run(config{}, bad, &out, log.NewNopLogger()))
	assert.True(t, bad.closed, "input is closed on the error path too")
}

func TestOpenInputTooManyFiles(t *testing.T) {
	t.Parallel()

	_, err := openInput([]string{"a", "b"})
	require.Error(t, err)
}
