package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/kevinwang15/yamjson"
	"github.com/mattn/go-isatty"
)

func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// printChanges writes changes as diff lines prefixed with ' ', '+' or '-'.
func printChanges(w io.Writer, changes []yamjson.LineChange, colored bool) error {
	var sb strings.Builder
	for _, ch := range changes {
		prefix, paint := " ", fmt.Sprintf
		switch ch.Op {
		case yamjson.LineInsert:
			prefix = "+"
			if colored {
				paint = color.GreenString
			}
		case yamjson.LineDelete:
			prefix = "-"
			if colored {
				paint = color.RedString
			}
		}
		for _, ln := range strings.SplitAfter(ch.Text, "\n") {
			if ln == "" {
				continue
			}
			sb.WriteString(paint("%s", prefix+strings.TrimSuffix(ln, "\n")))
			sb.WriteByte('\n')
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
