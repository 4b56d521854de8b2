package maptostr

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Field names accepted by ParseOptions.
const (
	FieldSrc             = "src"
	FieldKeyValDelimiter = "keyValDelimiter"
	FieldEntryDelimiter  = "entryDelimiter"
)

// ParseOptions decodes a YAML (or JSON) options record and merges it over the
// defaults. Fields present in the document override the defaults; absent
// fields keep them. Unknown fields are rejected. The src mapping keeps its
// document order. Merge keys (<<) are expanded; explicit fields win over
// merged ones.
func ParseOptions(data []byte) (Options, error) {
	root, err := decodeDocument(data)
	if err != nil {
		return Options{}, err
	}
	if root.Kind != yaml.MappingNode {
		return Options{}, errors.Wrapf(ErrInvalidOption, "options must be a mapping, line %d", root.Line)
	}

	pairs, err := mappingPairs(root)
	if err != nil {
		return Options{}, errors.Wrap(ErrInvalidOption, err.Error())
	}

	o := DefaultOptions()
	for _, p := range pairs {
		key, val := p.key, p.val
		switch key.Value {
		case FieldSrc:
			m, err := nodeToMap(val)
			if err != nil {
				return Options{}, err
			}
			o.Src = m
		case FieldKeyValDelimiter:
			d, err := nodeToDelimiter(key.Value, val)
			if err != nil {
				return Options{}, err
			}
			o.KeyValDelimiter = d
		case FieldEntryDelimiter:
			d, err := nodeToDelimiter(key.Value, val)
			if err != nil {
				return Options{}, err
			}
			o.EntryDelimiter = d
		default:
			return Options{}, errors.Wrapf(ErrUnknownOption, "%q at line %d", key.Value, key.Line)
		}
	}

	if o.Src == nil {
		return Options{}, errors.Wrap(ErrInvalidSource, "src is required")
	}
	return o, nil
}

// ParseSource decodes a bare YAML (or JSON) mapping, keeping document order.
// Scalar values keep their text as written, so 1.0 stays "1.0" and 0x10
// stays "0x10"; null becomes nil.
func ParseSource(data []byte) (Map, error) {
	root, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}
	return nodeToMap(root)
}

func decodeDocument(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode document")
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.Wrap(ErrInvalidSource, "empty document")
	}
	return resolveAlias(doc.Content[0]), nil
}

// nodeToMap converts a flat mapping node. Nested containers are rejected.
func nodeToMap(n *yaml.Node) (Map, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errors.Wrapf(ErrInvalidSource, "expected a mapping at line %d", n.Line)
	}

	pairs, err := mappingPairs(n)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidSource, err.Error())
	}

	out := make(Map, 0, len(pairs))
	for _, p := range pairs {
		if p.val.Kind != yaml.ScalarNode {
			return nil, errors.Wrapf(ErrInvalidSource, "nested value under %q at line %d", p.key.Value, p.val.Line)
		}
		if p.val.Tag == "!!null" {
			out.Set(p.key.Value, nil)
			continue
		}
		out.Set(p.key.Value, p.val.Value)
	}
	return out, nil
}

type pair struct {
	key, val *yaml.Node
}

// mappingPairs flattens a mapping node, expanding merge keys. Merged pairs
// come first so later explicit keys override them; within a merge list the
// earlier mapping wins.
func mappingPairs(n *yaml.Node) ([]pair, error) {
	var merged, explicit []pair
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], resolveAlias(n.Content[i+1])
		if !isMergeKey(key) {
			explicit = append(explicit, pair{key: key, val: val})
			continue
		}

		sources := []*yaml.Node{val}
		if val.Kind == yaml.SequenceNode {
			sources = sources[:0]
			for j := len(val.Content) - 1; j >= 0; j-- {
				sources = append(sources, resolveAlias(val.Content[j]))
			}
		}
		for _, src := range sources {
			if src.Kind != yaml.MappingNode {
				return nil, errors.Errorf("merge key at line %d must reference a mapping", key.Line)
			}
			ps, err := mappingPairs(src)
			if err != nil {
				return nil, err
			}
			merged = append(merged, ps...)
		}
	}
	return append(merged, explicit...), nil
}

func isMergeKey(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Value == "<<" && (n.Tag == "!!merge" || n.Tag == "")
}

func nodeToDelimiter(field string, n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return "", errors.Wrapf(ErrInvalidOption, "%s must be a string, line %d", field, n.Line)
	}
	return n.Value, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
