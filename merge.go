package yamjson

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// assignment matches a single-line block mapping entry "key: value".
var assignment = regexp.MustCompile(`^(\s*)([\w\-.]+)(\s*):(\s*)(.+)$`)

// scanAssignments maps every bare key that has an inline value in text to that value's text.
// Keys are not qualified by their path; a later line wins over an earlier one.
func scanAssignments(text string) map[string]string {
	out := map[string]string{}
	for _, ln := range splitLines(text) {
		m := assignment.FindStringSubmatch(strings.TrimSuffix(ln, "\r"))
		if m == nil || strings.TrimSpace(m[5]) == "" {
			continue
		}
		out[m[2]] = m[5]
	}
	return out
}

// mergeLines rewrites the values of the original's "key: value" lines with the texts from
// values. Full-line comments, unmatched lines and lines whose value already means the same
// scalar pass through. Inline comments stay on their line, at their column when the new value
// leaves room. With protect set, any line containing '#' passes through untouched.
func mergeLines(original string, values map[string]string, protect bool) (string, int) {
	var sb strings.Builder
	sb.Grow(len(original) + 64)
	rewritten := 0
	for _, ln := range splitLines(original) {
		out, changed := mergeLine(ln, values, protect)
		if changed {
			rewritten++
		}
		sb.WriteString(out)
		sb.WriteByte('\n')
	}
	return sb.String(), rewritten
}

func mergeLine(ln string, values map[string]string, protect bool) (string, bool) {
	body, hadCR := strings.CutSuffix(ln, "\r")
	if protect && strings.Contains(body, "#") {
		return ln, false
	}
	if strings.HasPrefix(strings.TrimLeft(body, " \t"), "#") {
		return ln, false
	}
	code, gap, comment := splitComment(body)
	m := assignment.FindStringSubmatch(code)
	if m == nil {
		return ln, false
	}
	newVal, ok := values[m[2]]
	if !ok || !inlineValue(m[5]) || !inlineValue(newVal) || sameScalar(m[5], newVal) {
		return ln, false
	}

	var sb strings.Builder
	sb.WriteString(m[1])
	sb.WriteString(m[2])
	sb.WriteString(m[3])
	sb.WriteByte(':')
	sb.WriteString(m[4])
	sb.WriteString(newVal)
	if comment != "" {
		sb.WriteString(realign(gap, m[5], newVal))
		sb.WriteString(comment)
	} else {
		sb.WriteString(gap)
	}
	if hadCR {
		sb.WriteByte('\r')
	}
	return sb.String(), true
}

// inlineValue reports whether a value text is complete on its line and safe to replace. Block
// scalar headers continue on the following lines and anchors are referenced from elsewhere.
func inlineValue(v string) bool {
	switch v[0] {
	case '|', '>', '&':
		return false
	}
	return true
}

// splitComment splits a line into its code, the whitespace gap before an inline comment and
// the comment itself. A '#' starts a comment only outside quotes and at the start of the line
// or after whitespace. Without a comment, gap holds the trailing whitespace.
func splitComment(line string) (code, gap, comment string) {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote == '"' && c == '\\':
			i++
		case quote != 0:
			if c == quote {
				if quote == '\'' && i+1 < len(line) && line[i+1] == '\'' {
					i++
					continue
				}
				quote = 0
			}
		case (c == '"' || c == '\'') && opensScalar(line, i):
			quote = c
		case c == '#' && (i == 0 || line[i-1] == ' ' || line[i-1] == '\t'):
			code = strings.TrimRight(line[:i], " \t")
			return code, line[len(code):i], line[i:]
		}
	}
	code = strings.TrimRight(line, " \t")
	return code, line[len(code):], ""
}

// opensScalar reports whether a quote at position i starts a quoted scalar rather than
// appearing inside a plain one, like the apostrophe in "it's".
func opensScalar(line string, i int) bool {
	j := i - 1
	for j >= 0 && (line[j] == ' ' || line[j] == '\t') {
		j--
	}
	if j < 0 {
		return true
	}
	switch line[j] {
	case '[', '{', ',':
		return true
	case ':', '-':
		return j < i-1
	}
	return false
}

// realign shrinks or grows an all-space gap so that a trailing comment keeps its column.
func realign(gap, oldVal, newVal string) string {
	if strings.ContainsRune(gap, '\t') {
		return gap
	}
	n := len(gap) + utf8.RuneCountInString(oldVal) - utf8.RuneCountInString(newVal)
	if n < 1 {
		n = 1
	}
	return strings.Repeat(" ", n)
}

// sameScalar reports whether two inline value texts decode to equal values.
func sameScalar(a, b string) bool {
	if a == b {
		return true
	}
	va, err := ParseText(a)
	if err != nil {
		return false
	}
	vb, err := ParseText(b)
	if err != nil {
		return false
	}
	return Equal(va, vb)
}

// splitLines splits text into lines the way a line reader does: a final newline does not
// produce an extra empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// collisions returns the leaf keys, those rendered as a single "key: value" line, that occur
// at more than one path in v, with their paths.
func collisions(v any) map[string][]string {
	paths := map[string][]string{}
	var walk func(v any, prefix string)
	walk = func(v any, prefix string) {
		switch t := v.(type) {
		case map[string]any:
			for k, e := range t {
				p := k
				if prefix != "" {
					p = prefix + "." + k
				}
				if isLeaf(e) {
					paths[k] = append(paths[k], p)
					continue
				}
				walk(e, p)
			}
		case []any:
			for i, e := range t {
				walk(e, prefix+"["+strconv.Itoa(i)+"]")
			}
		}
	}
	walk(v, "")

	out := map[string][]string{}
	for k, ps := range paths {
		if len(ps) > 1 {
			sort.Strings(ps)
			out[k] = ps
		}
	}
	return out
}

func isLeaf(v any) bool {
	switch t := v.(type) {
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	return true
}
