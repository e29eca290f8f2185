package yamjson

import "strings"

// layout is the block style detected from a source document and reused when the document is
// re-encoded.
type layout struct {
	indent    int  // base indent width
	indentSeq bool // whether sequences under a key are indented one level
}

var defaultLayout = layout{indent: 2, indentSeq: true}

// detectLayout infers the indent width as the gcd of all non-zero indents, and the sequence
// style by voting over "key:" lines followed by a "- " item.
func detectLayout(text string) layout {
	lines := strings.Split(text, "\n")
	l := layout{indent: detectIndent(lines), indentSeq: true}

	votes := 0 // >0 indented sequences, <0 indentless
	for i, ln := range lines {
		if isBlankOrComment(ln) || !endsWithMappingKey(ln) {
			continue
		}
		keyIndent := leadingSpaces(ln)
		for _, next := range lines[i+1:] {
			if isBlankOrComment(next) {
				continue
			}
			if strings.HasPrefix(strings.TrimLeft(next, " "), "-") {
				switch leadingSpaces(next) {
				case keyIndent + l.indent:
					votes++
				case keyIndent:
					votes--
				}
			}
			break
		}
	}
	if votes < 0 {
		l.indentSeq = false
	}
	return l
}

func detectIndent(lines []string) int {
	result := 0
	for _, ln := range lines {
		if isBlankOrComment(ln) {
			continue
		}
		if n := leadingSpaces(ln); n > 0 {
			result = gcd(result, n)
			if result == 1 {
				break
			}
		}
	}
	if result <= 0 || result > 8 {
		return defaultLayout.indent
	}
	return result
}

func isBlankOrComment(ln string) bool {
	t := strings.TrimSpace(ln)
	return t == "" || t[0] == '#'
}

// endsWithMappingKey reports whether the line is a block mapping key "key:" optionally
// followed by a comment.
func endsWithMappingKey(ln string) bool {
	idx := strings.IndexByte(ln, ':')
	if idx < 0 {
		return false
	}
	rest := strings.TrimSpace(ln[idx+1:])
	return rest == "" || rest[0] == '#'
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func leadingSpaces(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}
