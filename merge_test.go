package yamjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitComment(t *testing.T) {
	tests := []struct {
		line                string
		code, gap, comment string
	}{
		{"port: 8080  # listening port", "port: 8080", "  ", "# listening port"},
		{"  port: 8080", "  port: 8080", "", ""},
		{"port: 8080   ", "port: 8080", "   ", ""},
		{"# full line", "", "", "# full line"},
		{"url: http://x/#frag", "url: http://x/#frag", "", ""},
		{`url: "http://x/ #frag"  # real`, `url: "http://x/ #frag"`, "  ", "# real"},
		{`name: 'it''s # here'`, `name: 'it''s # here'`, "", ""},
		{`msg: "say \"hi\" # x" # c`, `msg: "say \"hi\" # x"`, " ", "# c"},
		{"name: it's # mine", "name: it's", " ", "# mine"},
		{"list: ['a #1', b] # tail", "list: ['a #1', b]", " ", "# tail"},
		{"key:\t# tabbed", "key:", "\t", "# tabbed"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			code, gap, comment := splitComment(tt.line)
			assert.Equal(t, tt.code, code, "code")
			assert.Equal(t, tt.gap, gap, "gap")
			assert.Equal(t, tt.comment, comment, "comment")
		})
	}
}

func TestScanAssignments(t *testing.T) {
	got := scanAssignments(`server:
  host: 127.0.0.1
  port: 9000
list:
  - name: first
  - plain
dotted.key: v
dash-key:  spaced
empty:
host: later
`)
	want := map[string]string{
		"host":       "later",
		"port":       "9000",
		"dotted.key": "v",
		"dash-key":   "spaced",
	}
	assert.Equal(t, want, got)
}

func TestMergeLines(t *testing.T) {
	original := "# header\n" +
		"server:\n" +
		"  host: 127.0.0.1  # primary\n" +
		"  port: 8080       # listening port\n" +
		"  name: 'svc'\n" +
		"  mode: fast\n"
	values := map[string]string{
		"host": "10.0.0.1",
		"port": "9000",
		"name": "svc",
		"mode": "fast",
	}

	got, rewritten := mergeLines(original, values, false)
	want := "# header\n" +
		"server:\n" +
		"  host: 10.0.0.1   # primary\n" +
		"  port: 9000       # listening port\n" +
		"  name: 'svc'\n" +
		"  mode: fast\n"
	assert.Equal(t, want, got)
	assert.Equal(t, 2, rewritten)

	protected, rewritten := mergeLines(original, values, true)
	assert.Equal(t, original, protected, "lines with # must pass through when protected")
	assert.Equal(t, 0, rewritten)
}

func TestMergeLinesLongerValuePushesComment(t *testing.T) {
	got, _ := mergeLines("a: 1 # one\n", map[string]string{"a": "123456"}, false)
	assert.Equal(t, "a: 123456 # one\n", got)
}

func TestMergeLinesKeepsLineEndings(t *testing.T) {
	got, _ := mergeLines("a: 1\r\nb: 2\r\n", map[string]string{"b": "3"}, false)
	assert.Equal(t, "a: 1\r\nb: 3\r\n", got)

	got, _ = mergeLines("a: 1", map[string]string{"a": "2"}, false)
	assert.Equal(t, "a: 2\n", got, "every line is newline terminated")
}

func TestSameScalar(t *testing.T) {
	assert.True(t, sameScalar("'admin'", "admin"))
	assert.True(t, sameScalar(`"x"`, "x"))
	assert.True(t, sameScalar("yes", "true"))
	assert.True(t, sameScalar("0.50", "0.5"))
	assert.True(t, sameScalar("[a, b]", "[a,b]"))
	assert.False(t, sameScalar("1", "2"))
	assert.False(t, sameScalar("*undefined", "x"))
}

func TestCollisions(t *testing.T) {
	v := map[string]any{
		"primary": map[string]any{"host": "a", "port": int64(1)},
		"replica": map[string]any{"host": "b"},
		"users": []any{
			map[string]any{"name": "admin"},
			map[string]any{"name": "guest"},
		},
		"unique": "x",
	}
	want := map[string][]string{
		"host": {"primary.host", "replica.host"},
		"name": {"users[0].name", "users[1].name"},
	}
	assert.Equal(t, want, collisions(v))
	assert.Empty(t, collisions(map[string]any{"a": map[string]any{"b": 1}}))
}

func TestMergeLinesSkipsBlockScalarsAndAnchors(t *testing.T) {
	original := "text: >\n  folded\n  lines\nbase: &b 1\n"
	values := map[string]string{"text": `"folded lines\n"`, "base": "2"}

	out, n := mergeLines(original, values, false)
	assert.Equal(t, 0, n)
	assert.Equal(t, original, out)

	out, n = mergeLines("a: 1\n", map[string]string{"a": "|-"}, false)
	assert.Equal(t, 0, n)
	assert.Equal(t, "a: 1\n", out)
}
