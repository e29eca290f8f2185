package main

import (
	"fmt"

	"github.com/kevinwang15/yamjson"
	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a path", cli.ErrUsage)
	}
	path := args[0]
	return eachInput(cc, args[1:], func(name string, in []byte) error {
		res := yamjson.New(string(in), cfg.docOpts()...).Get(path)
		if !res.Exists() {
			return fmt.Errorf("%s: no value at %q", name, path)
		}
		_, err := fmt.Fprintln(cc.Out, res.String())
		return err
	})
}
