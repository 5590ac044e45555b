// Package crosscheck compares the generic field and curve arithmetic with
// independent third-party implementations on random inputs.
package crosscheck

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/pkg/curve"
	"github.com/smallyu/go-weierstrass/pkg/field"
	"github.com/smallyu/go-weierstrass/pkg/integer"
)

// Options configures a run. Nil oracle lists select every available oracle.
type Options struct {
	Rounds  int
	Workers int
	Fields  []curves.FieldOracle
	Groups  []curves.GroupOracle
}

// Mismatch records one disagreement with an oracle.
type Mismatch struct {
	Oracle string
	Op     string
	Input  string
	Want   string
	Got    string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s %s(%s): want %s, got %s", m.Oracle, m.Op, m.Input, m.Want, m.Got)
}

// Report is the outcome of a run.
type Report struct {
	mu         sync.Mutex
	Checks     int
	Mismatches []Mismatch
}

func (r *Report) record(checks int, ms ...Mismatch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Checks += checks
	r.Mismatches = append(r.Mismatches, ms...)
}

// OK reports whether every check agreed with its oracle.
func (r *Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Run executes opts.Rounds rounds per oracle on at most opts.Workers
// goroutines. It returns early with ctx.Err() on cancellation.
func Run(ctx context.Context, opts Options, log logrus.FieldLogger) (*Report, error) {
	if opts.Rounds <= 0 || opts.Workers <= 0 {
		return nil, errors.Errorf("crosscheck: rounds and workers must be positive (%d, %d)", opts.Rounds, opts.Workers)
	}
	if opts.Fields == nil {
		opts.Fields = curves.Fields()
	}
	if opts.Groups == nil {
		opts.Groups = curves.Groups()
	}

	gens := make([]curve.Point[integer.Big], len(opts.Groups))
	for i, o := range opts.Groups {
		gen, err := generator(o)
		if err != nil {
			return nil, err
		}
		gens[i] = gen
	}

	report := &Report{}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for _, o := range opts.Fields {
		f := field.NewField(integer.NewBig(o.Modulus()))
		log.WithFields(logrus.Fields{"oracle": o.Name(), "rounds": opts.Rounds}).Debug("checking field")
		for range opts.Rounds {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				checks, ms, err := fieldRound(f, o)
				if err != nil {
					return errors.Wrap(err, o.Name())
				}
				report.record(checks, ms...)
				return nil
			})
		}
	}

	for i, o := range opts.Groups {
		gen := gens[i]
		log.WithFields(logrus.Fields{"oracle": o.Name(), "rounds": opts.Rounds}).Debug("checking group")
		for range opts.Rounds {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				checks, ms, err := groupRound(gen, o)
				if err != nil {
					return errors.Wrap(err, o.Name())
				}
				report.record(checks, ms...)
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, m := range report.Mismatches {
		log.WithField("oracle", m.Oracle).Warn(m.String())
	}
	log.WithFields(logrus.Fields{
		"checks":     report.Checks,
		"mismatches": len(report.Mismatches),
	}).Info("crosscheck finished")
	return report, nil
}

func fieldRound(f field.Field[integer.Big], o curves.FieldOracle) (int, []Mismatch, error) {
	m := o.Modulus()
	xv, err := curves.RandomResidue(m)
	if err != nil {
		return 0, nil, err
	}
	yv, err := curves.RandomNonZero(m)
	if err != nil {
		return 0, nil, err
	}
	x := f.Reduce(integer.NewBig(xv))
	y := f.Reduce(integer.NewBig(yv))

	var ms []Mismatch
	check := func(op string, want *big.Int, got field.Element[integer.Big]) {
		if want.Cmp(got.Num().BigInt()) != 0 {
			ms = append(ms, Mismatch{
				Oracle: o.Name(),
				Op:     op,
				Input:  fmt.Sprintf("%s, %s", xv, yv),
				Want:   want.String(),
				Got:    got.Num().String(),
			})
		}
	}

	inv := o.Inverse(yv)
	check("add", o.Add(xv, yv), x.Add(y))
	check("sub", o.Sub(xv, yv), x.Sub(y))
	check("mul", o.Mul(xv, yv), x.Mul(y))
	check("inverse", inv, y.Inverse())
	check("div", o.Mul(xv, inv), x.Div(y))
	check("pow(-1)", inv, y.PowInt64(-1))
	return 6, ms, nil
}

func generator(o curves.GroupOracle) (curve.Point[integer.Big], error) {
	params := o.Params()
	f := field.NewField(integer.NewBig(params.P))
	// elliptic.CurveParams has no linear coefficient; the oracles are all
	// Koblitz curves with a = 0.
	c := curve.NewCurve(f.Int64(0), f.Reduce(integer.NewBig(params.B)))
	g, err := c.Point(f.Reduce(integer.NewBig(params.Gx)), f.Reduce(integer.NewBig(params.Gy)))
	if err != nil {
		return curve.Point[integer.Big]{}, errors.Wrapf(err, "%s generator", o.Name())
	}
	return g, nil
}

func groupRound(g curve.Point[integer.Big], o curves.GroupOracle) (int, []Mismatch, error) {
	n := o.Params().N
	k1, err := curves.RandomNonZero(n)
	if err != nil {
		return 0, nil, err
	}
	k2, err := curves.RandomNonZero(n)
	if err != nil {
		return 0, nil, err
	}

	var ms []Mismatch
	check := func(op, input string, wx, wy *big.Int, got curve.Point[integer.Big]) {
		gx, gy := coords(got)
		if wx.Cmp(gx) != 0 || wy.Cmp(gy) != 0 {
			ms = append(ms, Mismatch{
				Oracle: o.Name(),
				Op:     op,
				Input:  input,
				Want:   fmt.Sprintf("(%s, %s)", wx, wy),
				Got:    fmt.Sprintf("(%s, %s)", gx, gy),
			})
		}
	}

	p1 := g.ScalarMul(integer.NewBig(k1))
	p2 := g.ScalarMul(integer.NewBig(k2))
	x1, y1 := o.ScalarBaseMult(k1)
	x2, y2 := o.ScalarBaseMult(k2)
	check("scalar-base-mult", k1.String(), x1, y1, p1)
	check("scalar-base-mult", k2.String(), x2, y2, p2)

	sx, sy := o.Add(x1, y1, x2, y2)
	check("add", fmt.Sprintf("%s*G, %s*G", k1, k2), sx, sy, p1.Add(p2))

	mx, my := o.ScalarMult(x1, y1, k2)
	check("scalar-mult", fmt.Sprintf("%s*(%s*G)", k2, k1), mx, my, p1.ScalarMul(integer.NewBig(k2)))
	return 4, ms, nil
}

// coords maps infinity to (0, 0), the convention of crypto/elliptic.
func coords(p curve.Point[integer.Big]) (*big.Int, *big.Int) {
	x, ok := p.X()
	if !ok {
		return new(big.Int), new(big.Int)
	}
	y, _ := p.Y()
	return x.Num().BigInt(), y.Num().BigInt()
}
