package yamjson

import (
	"bytes"
	"fmt"
	"sort"

	gyaml "github.com/goccy/go-yaml"
)

// captureOrder decodes text into an ordered template (mappings as MapSlice) and collects its
// comments keyed by YAML path.
func captureOrder(text string) (any, gyaml.CommentMap, error) {
	var tmpl any
	comments := gyaml.CommentMap{}
	err := gyaml.UnmarshalWithOptions([]byte(text), &tmpl, gyaml.UseOrderedMap(), gyaml.CommentToMap(comments))
	if err != nil {
		return nil, nil, err
	}
	return tmpl, comments, nil
}

// toOrdered turns a normalized value into the goccy encoder's ordered form. Keys present in
// the template keep their template position; new keys follow in sorted order.
func toOrdered(v any, tmpl any) any {
	switch t := v.(type) {
	case map[string]any:
		ms := make(gyaml.MapSlice, 0, len(t))
		seen := make(map[string]struct{}, len(t))
		if tm, ok := tmpl.(gyaml.MapSlice); ok {
			for _, it := range tm {
				k, ok := keyString(it.Key)
				if !ok {
					continue
				}
				val, present := t[k]
				if _, dup := seen[k]; !present || dup {
					continue
				}
				seen[k] = struct{}{}
				ms = append(ms, gyaml.MapItem{Key: k, Value: toOrdered(val, it.Value)})
			}
		}
		rest := make([]string, 0, len(t)-len(seen))
		for k := range t {
			if _, ok := seen[k]; !ok {
				rest = append(rest, k)
			}
		}
		sort.Strings(rest)
		for _, k := range rest {
			ms = append(ms, gyaml.MapItem{Key: k, Value: toOrdered(t[k], nil)})
		}
		return ms
	case []any:
		ts, _ := tmpl.([]any)
		out := make([]any, len(t))
		for i, e := range t {
			var et any
			if i < len(ts) {
				et = ts[i]
			}
			out[i] = toOrdered(e, et)
		}
		return out
	default:
		return t
	}
}

func keyString(k any) (string, bool) {
	switch kk := k.(type) {
	case string:
		return kk, true
	case nil:
		return "", false
	case fmt.Stringer:
		return kk.String(), true
	default:
		return fmt.Sprint(kk), true
	}
}

// encodeOrdered encodes v with the goccy encoder using the given layout and key order
// template. Comments are attached by path when a comment map is given.
func encodeOrdered(v any, tmpl any, l layout, comments gyaml.CommentMap) (string, error) {
	nv, err := normalize(v)
	if err != nil {
		return "", err
	}
	opts := []gyaml.EncodeOption{gyaml.Indent(l.indent), gyaml.IndentSequence(l.indentSeq)}
	if comments != nil {
		opts = append(opts, gyaml.WithComment(comments))
	}
	var buf bytes.Buffer
	enc := gyaml.NewEncoder(&buf, opts...)
	if err := enc.Encode(toOrdered(nv, tmpl)); err != nil {
		_ = enc.Close()
		return "", convErr("YAML emit error", err)
	}
	_ = enc.Close()
	return buf.String(), nil
}
