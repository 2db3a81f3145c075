package gadget

import (
	"math/big"

	"github.com/0xPolygonZero/r1cs/field"
)

// Lt returns x < y, comparing canonical representatives.
func (b *GadgetBuilder) Lt(x, y Expression) BooleanExpression {
	return b.cmp(x, y, true, true)
}

// Le returns x ≤ y.
func (b *GadgetBuilder) Le(x, y Expression) BooleanExpression {
	return b.cmp(x, y, true, false)
}

// Gt returns x > y.
func (b *GadgetBuilder) Gt(x, y Expression) BooleanExpression {
	return b.cmp(x, y, false, true)
}

// Ge returns x ≥ y.
func (b *GadgetBuilder) Ge(x, y Expression) BooleanExpression {
	return b.cmp(x, y, false, false)
}

// AssertLt asserts x < y.
func (b *GadgetBuilder) AssertLt(x, y Expression) { b.AssertTrue(b.Lt(x, y)) }

// AssertLe asserts x ≤ y.
func (b *GadgetBuilder) AssertLe(x, y Expression) { b.AssertTrue(b.Le(x, y)) }

// AssertGt asserts x > y.
func (b *GadgetBuilder) AssertGt(x, y Expression) { b.AssertTrue(b.Gt(x, y)) }

// AssertGe asserts x ≥ y.
func (b *GadgetBuilder) AssertGe(x, y Expression) { b.AssertTrue(b.Ge(x, y)) }

// cmp compares x and y by splitting base ± (x − y) into width+1 bits,
// width being the field bit length, and inspecting the top bit. As an
// example, with less=false and strict=false we decompose
//
//	2^width + x − y
//
// whose top bit is set iff x ≥ y. The other cases shift the base by one
// or negate the difference. The witness bits are derived from the
// integer difference of the canonical representatives, so the top bit
// matches the comparison for every honest input.
func (b *GadgetBuilder) cmp(x, y Expression, less, strict bool) BooleanExpression {
	width := field.BitLen(b.fld)

	base := new(big.Int).Lsh(big.NewInt(1), uint(width))
	if strict {
		base.Sub(base, big.NewInt(1))
	}

	diff := x.Sub(y)
	if less {
		diff = diff.Neg()
	}
	z := Constant(field.FromBig(b.fld, base)).Add(diff)

	binaryWire := b.BinaryWire(width + 1)
	binaryExp := FromBinaryWire(b.fld, binaryWire)
	b.AssertEqual(z, binaryExp.JoinAllowingOverflow(b.fld))

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
			u := new(big.Int).Sub(xv.BigInt(), yv.BigInt())
			if less {
				u.Neg(u)
			}
			u.Add(u, base)
			return values.SetBinary(binaryWire, u)
		})

	return FromBooleanWire(b.fld, binaryWire.Bits[width])
}
