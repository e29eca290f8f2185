package yamjson

import (
	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineOp is the kind of a LineChange.
type LineOp int

const (
	LineEqual LineOp = iota
	LineInsert
	LineDelete
)

func (op LineOp) String() string {
	switch op {
	case LineInsert:
		return "insert"
	case LineDelete:
		return "delete"
	default:
		return "equal"
	}
}

// LineChange is a run of whole lines that Render keeps, inserts or deletes relative to the
// original text. Text keeps the lines' newlines.
type LineChange struct {
	Op   LineOp
	Text string
}

// Diff returns a unified diff from the original text to the rendered document, or "" when
// rendering reproduces the original.
func (d *Document) Diff() string {
	before, after := d.original, d.Render()
	if before == after {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "original",
		ToFile:   "rendered",
		Context:  2,
	})
	if err != nil {
		d.logger.Warn("yamjson: diff failed", "error", err)
		return ""
	}
	return diff
}

// Changes returns the line-level differences between the original text and the rendered
// document.
func (d *Document) Changes() []LineChange {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(d.original, d.Render())
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	out := make([]LineChange, 0, len(diffs))
	for _, df := range diffs {
		var op LineOp
		switch df.Type {
		case diffmatchpatch.DiffInsert:
			op = LineInsert
		case diffmatchpatch.DiffDelete:
			op = LineDelete
		default:
			op = LineEqual
		}
		out = append(out, LineChange{Op: op, Text: df.Text})
	}
	return out
}
