package commands

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/urfave/cli/v3"

	"github.com/containerkit/imageref/pkg/cmdhelper"
	"github.com/containerkit/imageref/pkg/imageref"
	"github.com/containerkit/imageref/pkg/xlog"
)

// NewRenderCommand returns a render command with default values.
func NewRenderCommand() *RenderCommand {
	return &RenderCommand{}
}

// RenderCommand assembles components into a canonical reference string.
type RenderCommand struct {
	Registry string
	Name     string
	Tag      string
	Digest   string
}

// ToCLI transforms to a *cli.Command.
func (c *RenderCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "render",
		Usage: "Render components into a canonical image reference string",
		UsageText: `imageref render [OPTIONS]

# Render a fully qualified reference
$ imageref render --registry docker.io --name library/nginx --tag latest
`,
		Flags:  c.Flags(),
		Before: cli.BeforeFunc(cmdhelper.NoArgs()),
		Action: c.Run,
	}
}

// Flags returns a list of cli flags of the command.
func (c *RenderCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "registry",
			Usage:       "registry host with optional port",
			Destination: &c.Registry,
		},
		&cli.StringFlag{
			Name:        "name",
			Usage:       "slash-separated repository path",
			Required:    true,
			Destination: &c.Name,
		},
		&cli.StringFlag{
			Name:        "tag",
			Usage:       "version tag",
			Destination: &c.Tag,
		},
		&cli.StringFlag{
			Name:        "digest",
			Usage:       "content digest, including the algorithm prefix",
			Destination: &c.Digest,
		},
	}
}

// Run implements *cli.Command Action function.
func (c *RenderCommand) Run(ctx context.Context, cmd *cli.Command) error {
	ref := imageref.Reference{
		Registry: c.Registry,
		Name:     c.Name,
		Tag:      c.Tag,
		Digest:   digest.Digest(c.Digest),
	}
	if err := ref.Validate(); err != nil {
		return err
	}
	xlog.C(ctx).Debug("rendered reference", "canonical", ref.String())
	cmdhelper.Fprintf(cmd.Writer, "%s", ref)
	return nil
}
