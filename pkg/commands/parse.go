// Package commands defines the cli commands of the application.
package commands

import (
	"context"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/containerkit/imageref/pkg/cmdhelper"
	"github.com/containerkit/imageref/pkg/errdefs"
	"github.com/containerkit/imageref/pkg/imageref"
	"github.com/containerkit/imageref/pkg/xlog"
)

// NewParseCommand returns a parse command with default values.
func NewParseCommand() *ParseCommand {
	return &ParseCommand{
		Format: "text",
	}
}

// ParseCommand parses image references into their components.
type ParseCommand struct {
	Format string
}

// ToCLI transforms to a *cli.Command.
func (c *ParseCommand) ToCLI() *cli.Command {
	return &cli.Command{
		Name:  "parse",
		Usage: "Parse image references into registry, name, tag and digest components",
		UsageText: `imageref parse [OPTIONS] REFERENCE [REFERENCE...]

# Parse a reference and print its components
$ imageref parse docker.io/library/nginx:latest

# Parse several references and print them as JSON
$ imageref parse --format json nginx redis:7
`,
		ArgsUsage: "REFERENCE [REFERENCE...]",
		Flags:     c.Flags(),
		Before:    cli.BeforeFunc(cmdhelper.MinimumNArgs(1)),
		Action:    c.Run,
	}
}

// Flags returns a list of cli flags of the command.
func (c *ParseCommand) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       `output format, oneof ["text", "json", "yaml"]`,
			Value:       c.Format,
			Destination: &c.Format,
		},
	}
}

// Run implements *cli.Command Action function.
func (c *ParseCommand) Run(ctx context.Context, cmd *cli.Command) error {
	refs := make([]imageref.Reference, 0, cmd.Args().Len())
	for _, arg := range cmd.Args().Slice() {
		ref, err := imageref.Parse(arg)
		if err != nil {
			return err
		}
		xlog.C(ctx).Debug("parsed reference", "input", arg, "canonical", ref.String())
		refs = append(refs, ref)
	}
	return c.write(cmd, refs)
}

func (c *ParseCommand) write(cmd *cli.Command, refs []imageref.Reference) error {
	// a single reference is written as one object, not a one-element list
	payload := lo.Ternary[any](len(refs) == 1, refs[0], refs)

	switch c.Format {
	case "text":
		for _, ref := range refs {
			cmdhelper.Fprintf(cmd.Writer, "reference: %s", ref)
			cmdhelper.Fprintf(cmd.Writer, "  registry: %s", valueOrNone(ref.Registry))
			cmdhelper.Fprintf(cmd.Writer, "  name:     %s", ref.Name)
			cmdhelper.Fprintf(cmd.Writer, "  tag:      %s", valueOrNone(ref.Tag))
			cmdhelper.Fprintf(cmd.Writer, "  digest:   %s", valueOrNone(ref.Digest.String()))
		}
	case "json":
		out, err := cmdhelper.PrettifyJSON(payload)
		if err != nil {
			return err
		}
		cmdhelper.Fprintf(cmd.Writer, "%s", out)
	case "yaml":
		out, err := yaml.Marshal(payload)
		if err != nil {
			return err
		}
		_, _ = cmd.Writer.Write(out)
	default:
		return errdefs.Newf(errdefs.ErrUnsupported, "unsupported format %q", c.Format)
	}
	return nil
}

func valueOrNone(s string) string {
	return lo.Ternary(s == "", "<none>", s)
}
