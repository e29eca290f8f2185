package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kevinwang15/yamjson"
	"github.com/scott-cotton/cli"
)

func toJSON(cfg *ToJSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.ToJSON.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(name string, in []byte) error {
		v, err := yamjson.ParseText(string(in))
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", name, err)
		}
		var out []byte
		if cfg.Compact {
			out, err = json.Marshal(v)
		} else {
			out, err = json.MarshalIndent(v, "", "  ")
		}
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", name, err)
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", out)
		return err
	})
}

func toYAML(cfg *ToYAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.ToYAML.Parse(cc, args)
	if err != nil {
		return err
	}
	first := true
	return eachInput(cc, args, func(name string, in []byte) error {
		v, err := yamjson.ParseJSON(in)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", name, err)
		}
		out, err := yamjson.RenderText(v)
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", name, err)
		}
		if !first {
			if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
				return err
			}
		}
		first = false
		_, err = io.WriteString(cc.Out, out)
		return err
	})
}

// eachInput calls fn with the contents of each named file, or of stdin when there are none.
func eachInput(cc *cli.Context, files []string, fn func(name string, in []byte) error) error {
	if len(files) == 0 {
		in, err := io.ReadAll(cc.In)
		if err != nil {
			return fmt.Errorf("error reading: %w", err)
		}
		return fn("<stdin>", in)
	}
	for _, file := range files {
		var (
			in  []byte
			err error
		)
		if file == "-" {
			in, err = io.ReadAll(cc.In)
		} else {
			in, err = os.ReadFile(file)
		}
		if err != nil {
			return fmt.Errorf("could not read %q: %w", file, err)
		}
		if err := fn(file, in); err != nil {
			return err
		}
	}
	return nil
}
