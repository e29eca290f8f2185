package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "yamjson").
		WithSynopsis("yamjson [opts] command [opts]").
		WithDescription("yamjson converts between YAML and JSON and edits YAML keeping its comments.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yamjsonMain(cfg, cc, args)
		}).
		WithSubs(
			ToJSONCommand(cfg),
			ToYAMLCommand(cfg),
			GetCommand(cfg),
			SetCommand(cfg),
			PatchCommand(cfg))
}

func ToJSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ToJSONConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.ToJSON, "tojson").
		WithAliases("j").
		WithOpts(opts...).
		WithSynopsis("tojson [files]").
		WithDescription("convert YAML files to JSON").
		WithRun(func(cc *cli.Context, args []string) error {
			return toJSON(cfg, cc, args)
		})
}

func ToYAMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ToYAMLConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.ToYAML, "toyaml").
		WithAliases("y").
		WithSynopsis("toyaml [files]").
		WithDescription("convert JSON files to YAML").
		WithRun(func(cc *cli.Context, args []string) error {
			return toYAML(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("query YAML files with a gjson path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithOpts(opts...).
		WithSynopsis("set [-w] [-d] <file> path=value...").
		WithDescription("set values by dotted key path, keeping the file's comments").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithOpts(opts...).
		WithSynopsis("patch [-w] [-m] [-d] <patchfile> <file>").
		WithDescription("apply a JSON Patch or JSON merge patch, keeping the file's comments").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}
