// Package main is the entry of the application.
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/containerkit/imageref/pkg/cmdhelper"
	"github.com/containerkit/imageref/pkg/commands"
	"github.com/containerkit/imageref/pkg/xlog"
)

func main() {
	var debug bool
	app := cli.Command{
		Name:                  "imageref",
		Usage:                 "imageref parses, validates and renders container image references",
		Suggest:               true,
		EnableShellCompletion: true,
		HideVersion:           true,
		HideHelpCommand:       true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "debug",
				Usage:       "enable debug logging",
				Destination: &debug,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) error {
			if debug {
				xlog.SetLevel(xlog.LevelDebug)
			}
			return nil
		},
		Commands: []*cli.Command{
			commands.NewParseCommand().ToCLI(),
			commands.NewRenderCommand().ToCLI(),
			commands.NewVersionCommand().ToCLI(),
		},
		ExitErrHandler: func(ctx context.Context, c *cli.Command, err error) {
			cli.HandleExitCoder(err)
			cmdhelper.Fprintf(c.ErrWriter, "Error: %+v\n", err)
			os.Exit(1)
		},
	}
	//nolint:errcheck // already checked in root command ExitErrHandler
	_ = app.Run(context.Background(), os.Args)
}
