package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-weierstrass/pkg/curve"
	"github.com/smallyu/go-weierstrass/pkg/integer"
)

func newPointCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "point",
		Short: "Operate on points of the configured curve.",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "check <x> <y>",
			Short: "Check that (x, y) lies on the curve.",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := a.parsePoint(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), p)
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <x1> <y1> <x2> <y2>",
			Short: "Add two points.",
			Args:  cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := a.parsePoint(args[0], args[1])
				if err != nil {
					return err
				}
				q, err := a.parsePoint(args[2], args[3])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), p.Add(q))
				return nil
			},
		},
		&cobra.Command{
			Use:   "mul <k> [<x> <y>]",
			Short: "Multiply a point by an integer; defaults to the generator.",
			Long: `Multiply a point by k, or the configured generator when no point is
given. A negative k multiplies the negated point; pass it after --:

  ecc point mul --prime 223 --b 7 -- -1 47 71`,
			Args: func(cmd *cobra.Command, args []string) error {
				if len(args) != 1 && len(args) != 3 {
					return errors.Errorf("expected 1 or 3 arguments, got %d", len(args))
				}
				return nil
			},
			RunE: func(cmd *cobra.Command, args []string) error {
				k, err := integer.ParseBig(args[0])
				if err != nil {
					return err
				}

				var p curve.Point[integer.Big]
				if len(args) == 3 {
					if p, err = a.parsePoint(args[1], args[2]); err != nil {
						return err
					}
				} else {
					if a.gen == nil {
						return errors.New("curve has no generator; pass a point or set gx and gy")
					}
					p = *a.gen
				}

				a.log.WithField("k", k).Debug("scalar multiplication")
				fmt.Fprintln(cmd.OutOrStdout(), p.ScalarMul(k))
				return nil
			},
		},
	)
	return cmd
}

func (a *app) parsePoint(xs, ys string) (curve.Point[integer.Big], error) {
	c := a.curve
	f := c.Field()
	x, err := parseFieldElement(f, xs)
	if err != nil {
		return curve.Point[integer.Big]{}, errors.Wrap(err, "x")
	}
	y, err := parseFieldElement(f, ys)
	if err != nil {
		return curve.Point[integer.Big]{}, errors.Wrap(err, "y")
	}
	return c.Point(x, y)
}
