package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/kevinwang15/yamjson"
	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a file and at least one path=value", cli.ErrUsage)
	}
	doc, err := yamjson.Load(args[0], cfg.docOpts()...)
	if err != nil {
		return err
	}
	for _, a := range args[1:] {
		path, value, err := parseAssignment(a)
		if err != nil {
			return err
		}
		doc.UpdateValue(path, value)
	}
	return emit(cc.Out, doc, cfg.Write, cfg.Diff)
}

// parseAssignment splits "a.b.c=value" into its key path and a value decoded like a YAML
// scalar or flow collection.
func parseAssignment(a string) ([]string, any, error) {
	k, v, ok := strings.Cut(a, "=")
	if !ok || k == "" {
		return nil, nil, fmt.Errorf("%w: expected path=value, got %q", cli.ErrUsage, a)
	}
	path := strings.Split(k, ".")
	for _, seg := range path {
		if seg == "" {
			return nil, nil, fmt.Errorf("%w: empty key in path %q", cli.ErrUsage, k)
		}
	}
	value, err := yamjson.ParseText(v)
	if err != nil {
		value = yamjson.ClassifyScalar(v)
	}
	return path, value, nil
}

func emit(w io.Writer, doc *yamjson.Document, write, diff bool) error {
	if write {
		if err := doc.Save(); err != nil {
			return err
		}
	}
	if diff {
		return printChanges(w, doc.Changes(), useColor(w))
	}
	if write {
		return nil
	}
	_, err := io.WriteString(w, doc.Render())
	return err
}
