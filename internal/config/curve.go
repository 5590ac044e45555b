package config

import (
	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/pkg/curve"
	"github.com/smallyu/go-weierstrass/pkg/field"
	"github.com/smallyu/go-weierstrass/pkg/integer"
)

// Curve selects the curve the point commands operate on: either a named
// curve, or explicit parameters. An explicit prime takes precedence.
type Curve struct {
	Name  string `mapstructure:"name"`
	Prime string `mapstructure:"prime"`
	A     string `mapstructure:"a"`
	B     string `mapstructure:"b"`
	Gx    string `mapstructure:"gx"`
	Gy    string `mapstructure:"gy"`
}

// Named lists the curves selectable by name.
var Named = map[string]func() (curve.Curve[integer.Big], curve.Point[integer.Big]){
	"secp256k1": func() (curve.Curve[integer.Big], curve.Point[integer.Big]) {
		return curve.Secp256k1(), curve.Secp256k1Generator()
	},
}

func (c Curve) validate() error {
	if c.Prime == "" {
		if _, ok := Named[c.Name]; !ok {
			return errors.Errorf("unknown curve %q and no prime given", c.Name)
		}
		return nil
	}
	if (c.Gx == "") != (c.Gy == "") {
		return errors.New("gx and gy must be given together")
	}
	_, _, err := c.Build()
	return err
}

// FieldPrime returns the prime of the configured field.
func (c Curve) FieldPrime() (integer.Big, error) {
	if c.Prime == "" {
		named, ok := Named[c.Name]
		if !ok {
			return integer.Big{}, errors.Errorf("unknown curve %q", c.Name)
		}
		cv, _ := named()
		return cv.Field().Prime(), nil
	}
	p, err := integer.ParseBig(c.Prime)
	if err != nil {
		return integer.Big{}, errors.Wrap(err, "prime")
	}
	if p.Cmp(integer.FromInt64[integer.Big](2)) < 0 {
		return integer.Big{}, errors.Errorf("prime %s is too small", p)
	}
	return p, nil
}

// Build returns the configured curve and, when known, its generator.
func (c Curve) Build() (curve.Curve[integer.Big], *curve.Point[integer.Big], error) {
	if c.Prime == "" {
		named, ok := Named[c.Name]
		if !ok {
			return curve.Curve[integer.Big]{}, nil, errors.Errorf("unknown curve %q", c.Name)
		}
		cv, g := named()
		return cv, &g, nil
	}

	p, err := c.FieldPrime()
	if err != nil {
		return curve.Curve[integer.Big]{}, nil, err
	}
	f := field.NewField(p)

	a, err := parseElement(f, "a", c.A)
	if err != nil {
		return curve.Curve[integer.Big]{}, nil, err
	}
	b, err := parseElement(f, "b", c.B)
	if err != nil {
		return curve.Curve[integer.Big]{}, nil, err
	}
	cv := curve.NewCurve(a, b)
	if c.Gx == "" {
		return cv, nil, nil
	}

	gx, err := parseElement(f, "gx", c.Gx)
	if err != nil {
		return curve.Curve[integer.Big]{}, nil, err
	}
	gy, err := parseElement(f, "gy", c.Gy)
	if err != nil {
		return curve.Curve[integer.Big]{}, nil, err
	}
	g, err := cv.Point(gx, gy)
	if err != nil {
		return curve.Curve[integer.Big]{}, nil, errors.Wrap(err, "generator")
	}
	return cv, &g, nil
}

func parseElement(f field.Field[integer.Big], name, s string) (field.Element[integer.Big], error) {
	if s == "" {
		s = "0"
	}
	n, err := integer.ParseBig(s)
	if err != nil {
		return field.Element[integer.Big]{}, errors.Wrap(err, name)
	}
	e, err := f.Element(n)
	if err != nil {
		return field.Element[integer.Big]{}, errors.Wrap(err, name)
	}
	return e, nil
}
