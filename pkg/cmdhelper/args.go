package cmdhelper

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/containerkit/imageref/pkg/errdefs"
)

// ActionFunc is a function type to set *cli.Command hooks.
type ActionFunc func(ctx context.Context, cmd *cli.Command) error

// ExactArgs returns an error if there are not exactly n args.
func ExactArgs(n int) ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		if args := cmd.Args(); args.Len() != n {
			return errdefs.Newf(errdefs.ErrInvalidParameter,
				"accepts %d arg(s), received %d", n, args.Len())
		}
		return nil
	}
}

// MinimumNArgs returns an error if there is not at least n args.
func MinimumNArgs(n int) ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		if args := cmd.Args(); args.Len() < n {
			return errdefs.Newf(errdefs.ErrInvalidParameter,
				"accepts at least %d arg(s), received %d", n, args.Len())
		}
		return nil
	}
}

// NoArgs returns an error if any args are included.
func NoArgs() ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		if args := cmd.Args(); args.Len() > 0 {
			return errdefs.Newf(errdefs.ErrInvalidParameter,
				"no args required for %q, received %q", cmd.FullName(), args.First())
		}
		return nil
	}
}
