package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-weierstrass/pkg/field"
	"github.com/smallyu/go-weierstrass/pkg/integer"
)

var fieldOps = map[string]func(x, y field.Element[integer.Big], e integer.Big) (field.Element[integer.Big], error){
	"add": func(x, y field.Element[integer.Big], _ integer.Big) (field.Element[integer.Big], error) {
		return x.Add(y), nil
	},
	"sub": func(x, y field.Element[integer.Big], _ integer.Big) (field.Element[integer.Big], error) {
		return x.Sub(y), nil
	},
	"mul": func(x, y field.Element[integer.Big], _ integer.Big) (field.Element[integer.Big], error) {
		return x.Mul(y), nil
	},
	"div": func(x, y field.Element[integer.Big], _ integer.Big) (field.Element[integer.Big], error) {
		if y.IsZero() {
			return field.Element[integer.Big]{}, errors.New("division by zero")
		}
		return x.Div(y), nil
	},
	"pow": func(x, _ field.Element[integer.Big], e integer.Big) (field.Element[integer.Big], error) {
		return x.Pow(e), nil
	},
}

func newFieldCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "field <add|sub|mul|div|pow> <x> <y>",
		Short: "Evaluate a field operation.",
		Long: `Evaluate x op y in the configured prime field. For pow, y is an
integer exponent and may be negative; pass it after --:

  ecc field pow 17 --prime 31 -- -3`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := fieldOps[args[0]]
			if !ok {
				return errors.Errorf("unknown field operation %q", args[0])
			}
			f := a.curve.Field()
			p := f.Prime()

			x, err := parseFieldElement(f, args[1])
			if err != nil {
				return err
			}
			var y field.Element[integer.Big]
			var e integer.Big
			if args[0] == "pow" {
				if e, err = integer.ParseBig(args[2]); err != nil {
					return err
				}
			} else if y, err = parseFieldElement(f, args[2]); err != nil {
				return err
			}

			r, err := op(x, y, e)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{"op": args[0], "prime": p}).Debug("field operation")
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

func parseFieldElement(f field.Field[integer.Big], s string) (field.Element[integer.Big], error) {
	n, err := integer.ParseBig(s)
	if err != nil {
		return field.Element[integer.Big]{}, err
	}
	return f.Element(n)
}
