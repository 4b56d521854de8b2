package maptostr

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Source is anything that can be read as an ordered list of key/value entries.
type Source interface {
	Entries() []Entry
}

// Entry is a single key/value pair of a Source.
type Entry struct {
	Key   string
	Value any
}

// Map is an ordered mapping. Iteration follows insertion order.
type Map []Entry

// Entries implements Source.
func (m Map) Entries() []Entry {
	return m
}

// Set assigns value to key. An existing key keeps its position; a new key is appended.
func (m *Map) Set(key string, value any) {
	for i := range *m {
		if (*m)[i].Key == key {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, Entry{Key: key, Value: value})
}

// Get returns the value stored under key.
func (m Map) Get(key string) (any, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in iteration order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, e := range m {
		keys = append(keys, e.Key)
	}
	return keys
}

// MarshalYAML encodes the map as a YAML mapping in iteration order.
func (m Map) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range m {
		var val yaml.Node
		if err := val.Encode(e.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Key},
			&val,
		)
	}
	return node, nil
}

// FromMap adapts a native Go map. Go maps carry no insertion order, so keys
// are sorted lexically to keep the output deterministic.
func FromMap[V any](m map[string]V) Map {
	keys := maps.Keys(m)
	slices.Sort(keys)

	out := make(Map, 0, len(keys))
	for _, k := range keys {
		out = append(out, Entry{Key: k, Value: m[k]})
	}
	return out
}
