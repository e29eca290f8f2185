// Package yamjson converts between YAML documents and JSON-like value trees and edits YAML
// through such trees without losing the document's comments.
//
// Values are plain Go: nil, bool, int64, float64, string, []any and map[string]any. Inputs
// may also use other integer and float kinds, json.Number, typed slices and maps with string
// keys.
//
// ParseText and RenderText are strict and return a *ConversionError on bad input. A Document
// is lenient: New and Render never fail and report degraded results through a slog.Logger.
//
//	doc := yamjson.New(src)
//	doc.UpdateValue([]string{"server", "port"}, 9000)
//	out := doc.Render() // comments of src are kept
//
// Render patches changed "key: value" lines of the original text. Keys are matched by name
// only, without their path; Document.Collisions lists keys for which this is ambiguous.
// Keys and sequence items that the original text does not contain on a single line are not
// added; WithVerifiedRender detects this and re-encodes the whole value instead.
//
// Set, Delete, ApplyJSONPatch and ApplyMergePatch replace the value tree with a new one, so
// maps obtained from Value before the call are no longer part of the document.
package yamjson
