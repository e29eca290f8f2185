package main

import (
	"log/slog"
	"os"

	"github.com/kevinwang15/yamjson"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Verbose bool `cli:"name=v desc='log diagnostics to stderr'"`
	Verify  bool `cli:"name=verify desc='re-encode when a comment-preserving render loses data'"`
	Protect bool `cli:"name=protect desc='never rewrite lines containing #'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) logger() *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (cfg *MainConfig) docOpts() []yamjson.Option {
	opts := []yamjson.Option{yamjson.WithLogger(cfg.logger())}
	if cfg.Verify {
		opts = append(opts, yamjson.WithVerifiedRender())
	}
	if cfg.Protect {
		opts = append(opts, yamjson.WithProtectedCommentLines())
	}
	return opts
}

type ToJSONConfig struct {
	*MainConfig
	Compact bool `cli:"name=c desc='compact output'"`

	ToJSON *cli.Command
}

type ToYAMLConfig struct {
	*MainConfig

	ToYAML *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write the result back to the file'"`
	Diff  bool `cli:"name=d desc='print a line diff instead of the document'"`

	Set *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write the result back to the file'"`
	Merge bool `cli:"name=m desc='treat the patch as a JSON merge patch'"`
	Diff  bool `cli:"name=d desc='print a line diff instead of the document'"`

	Patch *cli.Command
}
