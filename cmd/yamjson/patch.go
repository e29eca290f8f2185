package main

import (
	"fmt"
	"os"

	"github.com/kevinwang15/yamjson"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a patch file and a file", cli.ErrUsage)
	}
	p, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read %q: %w", args[0], err)
	}
	doc, err := yamjson.Load(args[1], cfg.docOpts()...)
	if err != nil {
		return err
	}
	if cfg.Merge {
		err = doc.ApplyMergePatch(p)
	} else {
		err = doc.ApplyJSONPatch(p)
	}
	if err != nil {
		return err
	}
	return emit(cc.Out, doc, cfg.Write, cfg.Diff)
}
