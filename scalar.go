package yamjson

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	intLiteral   = regexp.MustCompile(`^-?[0-9]+$`)
	floatLiteral = regexp.MustCompile(`^[-+]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][-+]?[0-9]+)?$`)
	infLiteral   = regexp.MustCompile(`^([-+]?)\.(inf|Inf|INF)$`)
	nanLiteral   = regexp.MustCompile(`^\.(nan|NaN|NAN)$`)
)

// ClassifyScalar infers the value kind of a YAML scalar from its text. The checks run in a
// fixed order: base-10 integer, float (including .inf, -.inf and .nan), the boolean words true/yes/false/no and null (case
// insensitive), and finally the unchanged text as a string.
//
// The yes/no words are folded into booleans, so the string "yes" does not survive a round
// trip as a string.
func ClassifyScalar(text string) any {
	if intLiteral.MatchString(text) {
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return i
		}
	}
	if floatLiteral.MatchString(text) {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return f
		}
	}
	if m := infLiteral.FindStringSubmatch(text); m != nil {
		if m[1] == "-" {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	if nanLiteral.MatchString(text) {
		return math.NaN()
	}
	switch strings.ToLower(text) {
	case "true", "yes":
		return true
	case "false", "no":
		return false
	case "null":
		return nil
	}
	return text
}
