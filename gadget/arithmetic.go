package gadget

import (
	"fmt"

	"github.com/0xPolygonZero/r1cs/field"
)

// Product returns x·y. Multiplication by a constant is folded into the
// expression; otherwise a fresh wire carries the product, with one rank-1
// constraint and a generator computing it.
func (b *GadgetBuilder) Product(x, y Expression) Expression {
	if x.IsZero() || y.IsZero() {
		return ZeroExpression()
	}
	if c, ok := x.AsConstant(); ok {
		return y.Mul(c)
	}
	if c, ok := y.AsConstant(); ok {
		return x.Mul(c)
	}

	product := b.Wire()
	productExp := FromWire(b.fld, product)
	b.AssertProduct(x, y, productExp)

	b.AddGenerator(concatWires(x.Dependencies(), y.Dependencies()),
		func(values *WireValues) error {
			xv, err := x.Evaluate(values)
			if err != nil {
				return err
			}
			yv, err := y.Evaluate(values)
			if err != nil {
				return err
			}
			return values.Set(product, xv.Mul(yv))
		})

	return productExp
}

// Exp returns x^p for a constant p ≥ 0, using exponentiation by squaring.
func (b *GadgetBuilder) Exp(x Expression, p int) Expression {
	if p < 0 {
		panic("exponent must be non-negative")
	}
	// squares[i] = x^(2^i)
	squares := []Expression{x}
	for i := 1; 1<<i <= p; i++ {
		last := squares[len(squares)-1]
		squares = append(squares, b.Product(last, last))
	}

	product := b.one()
	for i, square := range squares {
		if (p>>i)&1 != 0 {
			product = b.Product(product, square)
		}
	}
	return product
}

// Inverse returns 1/x. If x is zero, the gadget is unsatisfiable and
// execution fails.
func (b *GadgetBuilder) Inverse(x Expression) Expression {
	xInv := b.Wire()
	b.AssertProduct(x, FromWire(b.fld, xInv), b.one())

	b.AddGenerator(x.Dependencies(), func(values *WireValues) error {
		xv, err := x.Evaluate(values)
		if err != nil {
			return err
		}
		if xv.IsZero() {
			return fmt.Errorf("cannot invert zero (%s = 0)", x)
		}
		return values.Set(xInv, xv.MultiplicativeInverse())
	})

	return FromWire(b.fld, xInv)
}

// InverseOrZero returns 1/x, with zero mapped to itself.
func (b *GadgetBuilder) InverseOrZero(x Expression) Expression {
	z := b.EqualsZero(x)
	xInv := b.Wire()
	xInvExp := FromWire(b.fld, xInv)
	// x non-zero forces xInv = 1/x; x zero forces xInv = 0.
	b.AssertProduct(x, xInvExp, b.one().Sub(z.Expression()))
	b.AssertProduct(z.Expression(), xInvExp, ZeroExpression())

	b.AddGenerator(x.Dependencies(), func(values *WireValues) error {
		xv, err := x.Evaluate(values)
		if err != nil {
			return err
		}
		return values.Set(xInv, xv.InverseOrZero())
	})

	return xInvExp
}

// Quotient returns x/y. If y is zero, execution fails.
func (b *GadgetBuilder) Quotient(x, y Expression) Expression {
	return b.Product(x, b.Inverse(y))
}

// Modulus returns x mod y on the canonical representatives, via a
// non-deterministic quotient and remainder with r < y.
func (b *GadgetBuilder) Modulus(x, y Expression) Expression {
	q := b.Wire()
	r := b.Wire()
	rExp := FromWire(b.fld, r)
	b.AssertProduct(y, FromWire(b.fld, q), x.Sub(rExp))
	b.AssertLt(rExp, y)

	b.AddGenerator(concatWires(x.Dependencies(), y.Dependencies()),
		func(values *WireValues) error {
			xv, err := x.Evaluate(values)
			if err != nil {
				return err
			}
			yv, err := y.Evaluate(values)
			if err != nil {
				return err
			}
			if yv.IsZero() {
				return fmt.Errorf("modulus by zero (%s = 0)", y)
			}
			if err := values.Set(q, xv.IntegerDivision(yv)); err != nil {
				return err
			}
			return values.Set(r, xv.IntegerModulus(yv))
		})

	return rExp
}

// Divides returns 1 if x divides y (on representatives), else 0.
func (b *GadgetBuilder) Divides(x, y Expression) BooleanExpression {
	return b.EqualsZero(b.Modulus(y, x))
}

// EqualsZero returns 1 if x = 0, else 0.
func (b *GadgetBuilder) EqualsZero(x Expression) BooleanExpression {
	// Non-deterministically compute
	//   z = (x == 0), y = x == 0 ? 1 : 1/x
	// and constrain: z binary, y non-zero, x·y = 1 − z.
	// If x = 0 the product constraint forces z = 1; if x ≠ 0, z = 1 would
	// force y = 0, which the non-zero constraint prohibits.
	y := b.Wire()
	z := b.Wire()

	b.AddGenerator(x.Dependencies(), func(values *WireValues) error {
		xv, err := x.Evaluate(values)
		if err != nil {
			return err
		}
		zv := field.FromBool(b.fld, xv.IsZero())
		yv := field.One(b.fld)
		if !xv.IsZero() {
			yv = xv.MultiplicativeInverse()
		}
		if err := values.Set(z, zv); err != nil {
			return err
		}
		return values.Set(y, yv)
	})

	zExp := b.AssertBoolean(FromWire(b.fld, z))
	b.AssertNonzero(FromWire(b.fld, y))
	b.AssertProduct(x, FromWire(b.fld, y), b.one().Sub(zExp.Expression()))

	return zExp
}

// Equal returns 1 if x = y, else 0.
func (b *GadgetBuilder) Equal(x, y Expression) BooleanExpression {
	return b.EqualsZero(x.Sub(y))
}

// Selection returns x if c, else y. c must be boolean.
func (b *GadgetBuilder) Selection(c BooleanExpression, x, y Expression) Expression {
	return y.Add(b.Product(c.Expression(), x.Sub(y)))
}

func concatWires(lists ...[]Wire) []Wire {
	n := 0
	for _, l := range lists {
		n += len(l)
	}
	out := make([]Wire, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}
