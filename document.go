package yamjson

import (
	"fmt"
	"log/slog"
	"sort"

	gyaml "github.com/goccy/go-yaml"
	"gopkg.in/yaml.v3"
)

// Document holds a YAML source text together with the value tree decoded from it. The value
// can be changed freely; Render merges the changes back into the source text, keeping its
// comments where the line heuristic allows.
//
// A Document is not safe for concurrent use.
type Document struct {
	original string
	value    any
	path     string

	logger  *slog.Logger
	verify  bool
	protect bool

	layout   layout
	order    any
	comments gyaml.CommentMap
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger receiving diagnostics for degraded parses and renders.
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) { d.logger = l }
}

// WithPath sets the file path used by Save and Reload.
func WithPath(path string) Option {
	return func(d *Document) { d.path = path }
}

// WithVerifiedRender makes Render decode its merged output and, when it no longer matches the
// value, fall back to a structured encode that re-attaches comments by path.
func WithVerifiedRender() Option {
	return func(d *Document) { d.verify = true }
}

// WithProtectedCommentLines makes Render pass every line containing '#' through untouched,
// even when it also holds a changed "key: value" entry.
func WithProtectedCommentLines() Option {
	return func(d *Document) { d.protect = true }
}

// New creates a Document from YAML text. It never fails: text that does not parse leaves the
// document with an empty object value and logs a warning.
// Empty text and a document holding only null also yield an empty object, not nil.
func New(text string, opts ...Option) *Document {
	d := &Document{}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	d.load(text)
	return d
}

func (d *Document) load(text string) {
	d.original = text
	d.layout = defaultLayout
	d.order, d.comments = nil, nil

	v, err := ParseText(text)
	if err != nil {
		d.logger.Warn("yamjson: YAML did not parse, starting from an empty object",
			"path", d.path, "error", err)
		d.value = map[string]any{}
		return
	}
	if v == nil {
		v = map[string]any{}
	}
	d.value = v

	d.layout = detectLayout(text)
	if tmpl, comments, err := captureOrder(text); err == nil {
		d.order, d.comments = tmpl, comments
	} else {
		d.logger.Debug("yamjson: no key order captured", "error", err)
	}
}

// Value returns the document's value tree. Objects and arrays are shared with the document, so
// changes made through them are rendered.
func (d *Document) Value() any { return d.value }

// SetValue replaces the whole value tree.
func (d *Document) SetValue(v any) { d.value = v }

// Object returns the root object, or nil when the root is not an object.
func (d *Document) Object() map[string]any {
	m, _ := d.value.(map[string]any)
	return m
}

// UpdateValue sets value at path, creating intermediate objects. See SetAtPath.
func (d *Document) UpdateValue(path []string, value any) bool {
	return SetAtPath(&d.value, path, value)
}

// OriginalText returns the text the document was created or last reloaded from.
func (d *Document) OriginalText() string { return d.original }

// Path returns the file path used by Save and Reload.
func (d *Document) Path() string { return d.path }

// SetPath sets the file path used by Save and Reload.
func (d *Document) SetPath(path string) { d.path = path }

// Comments returns the comments of the original text keyed by YAML path, as collected by
// go-yaml. It is nil when the text could not be decoded.
func (d *Document) Comments() gyaml.CommentMap { return d.comments }

// Collisions reports the leaf keys that occur at more than one path in the current value. Render
// matches keys without their path, so the lines of such keys may receive each other's values.
func (d *Document) Collisions() map[string][]string {
	v, err := normalize(d.value)
	if err != nil {
		return nil
	}
	return collisions(v)
}

// Render returns the document as YAML. Changed values are written into the original text line
// by line so that comments and layout survive. Render never fails; when the original text cannot
// be used it returns a comment-free encoding of the value, and "" if even that fails.
func (d *Document) Render() (out string) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("yamjson: render panicked, dropping comments", "panic", r)
			out = d.renderPlain()
		}
	}()

	if d.original == "" {
		return d.renderPlain()
	}
	var probe yaml.Node
	if err := yaml.Unmarshal([]byte(d.original), &probe); err != nil {
		d.logger.Warn("yamjson: original YAML did not parse, dropping comments", "error", err)
		return d.renderPlain()
	}

	modified, err := encodeOrdered(d.value, d.order, d.layout, nil)
	if err != nil {
		d.logger.Warn("yamjson: cannot encode value, dropping comments", "error", err)
		return d.renderPlain()
	}

	if c := d.Collisions(); len(c) > 0 {
		keys := make([]string, 0, len(c))
		for k := range c {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		d.logger.Warn("yamjson: keys at several paths may be conflated", "keys", keys)
	}

	merged, rewritten := mergeLines(d.original, scanAssignments(modified), d.protect)
	d.logger.Debug("yamjson: rendered", "rewritten_lines", rewritten)
	if !d.verify {
		return merged
	}

	got, err := ParseText(merged)
	if err == nil && Equal(d.emptyAsObject(got), d.value) {
		return merged
	}
	d.logger.Warn("yamjson: merged text diverges from value, re-encoding with attached comments",
		"error", err)
	structured, err := encodeOrdered(d.value, d.order, d.layout, d.comments)
	if err != nil {
		d.logger.Warn("yamjson: structured encode failed", "error", err)
		return merged
	}
	return structured
}

func (d *Document) emptyAsObject(v any) any {
	if v == nil {
		if _, ok := d.value.(map[string]any); ok {
			return map[string]any{}
		}
	}
	return v
}

func (d *Document) renderPlain() string {
	s, err := RenderText(d.value)
	if err != nil {
		d.logger.Error("yamjson: cannot render value", "error", err)
		return ""
	}
	return s
}

// String implements fmt.Stringer with Render.
func (d *Document) String() string { return d.Render() }

var _ fmt.Stringer = (*Document)(nil)
