package yamjson

import (
	"bytes"
	"math"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ParseText parses YAML text into a value tree.
func ParseText(text string) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, convErr("YAML parse error", err)
	}
	return NodeToValue(&doc)
}

// RenderText encodes a value tree as YAML text without comments.
func RenderText(v any) (string, error) {
	n, err := ValueToNode(v)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		_ = enc.Close()
		return "", convErr("YAML emit error", err)
	}
	if err := enc.Close(); err != nil {
		return "", convErr("YAML emit error", err)
	}
	return buf.String(), nil
}

// NodeToValue converts a yaml.v3 node tree into a value tree. Scalars are classified with
// ClassifyScalar regardless of their quoting; a scalar the parser resolved as null (an empty
// value or ~) becomes nil. Duplicate mapping keys keep the last value.
func NodeToValue(n *yaml.Node) (any, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case 0:
		return nil, nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return NodeToValue(n.Content[0])
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		return ClassifyScalar(n.Value), nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := NodeToValue(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.MappingNode:
		obj := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, err := mappingKey(n.Content[i])
			if err != nil {
				return nil, err
			}
			v, err := NodeToValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj[key] = v
		}
		return obj, nil
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, convErr("unresolved alias *"+n.Value, nil)
		}
		return NodeToValue(n.Alias)
	}
	return nil, convErr("unsupported node type", nil)
}

func mappingKey(k *yaml.Node) (string, error) {
	if k.Kind == yaml.AliasNode && k.Alias != nil {
		k = k.Alias
	}
	if k.Kind != yaml.ScalarNode {
		return "", convErr("non-scalar mapping key", nil)
	}
	return k.Value, nil
}

// ValueToNode converts a value tree into a yaml.v3 node tree. Mapping keys are emitted in
// sorted order.
func ValueToNode(v any) (*yaml.Node, error) {
	nv, err := normalize(v)
	if err != nil {
		return nil, err
	}
	return valueToNode(nv), nil
}

func valueToNode(v any) *yaml.Node {
	switch t := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t)}
	case int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(t, 10)}
	case float64:
		return floatNode(t)
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: t}
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range t {
			seq.Content = append(seq.Content, valueToNode(e))
		}
		return seq
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		mp := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range keys {
			mp.Content = append(mp.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				valueToNode(t[k]))
		}
		return mp
	}
	// normalize only produces the kinds above
	panic("yamjson: unnormalized value")
}

func floatNode(f float64) *yaml.Node {
	var s string
	switch {
	case math.IsInf(f, 1):
		s = ".inf"
	case math.IsInf(f, -1):
		s = "-.inf"
	case math.IsNaN(f):
		s = ".nan"
	default:
		s = strconv.FormatFloat(f, 'g', -1, 64)
	}
	// integral floats print without a fraction; tag them as ints so the emitter
	// does not add an explicit !!float tag.
	tag := "!!float"
	if intLiteral.MatchString(s) {
		tag = "!!int"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: s}
}
