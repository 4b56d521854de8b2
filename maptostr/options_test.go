package maptostr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewOptionsDefaults(t *testing.T) {
	t.Parallel()

	o := NewOptions()
	assert.Nil(t, o.Src)
	assert.Equal(t, ":", o.KeyValDelimiter)
	assert.Equal(t, ";", o.EntryDelimiter)
}

func TestNewOptionsOverrides(t *testing.T) {
	t.Parallel()

	src := Map{{"a", 1}}
	o := NewOptions(WithSource(src), WithEntryDelimiter(""), nil, WithEntryDelimiter("|"))
	assert.Equal(t, src, o.Src)
	assert.Equal(t, DefaultKeyValDelimiter, o.KeyValDelimiter)
	assert.Equal(t, "|", o.EntryDelimiter)

	o = NewOptions(WithKeyValDelimiter(""))
	assert.Equal(t, "", o.KeyValDelimiter, "explicit empty delimiter is kept")
}

func TestDefaultOptionsIsACopy(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()
	o.KeyValDelimiter = "="
	o.EntryDelimiter = ","

	assert.Equal(t, Options{KeyValDelimiter: ":", EntryDelimiter: ";"}, DefaultOptions())
}
