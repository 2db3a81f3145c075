package gadget

import (
	"fmt"
	"math/big"

	"github.com/0xPolygonZero/r1cs/field"
)

// BooleanExpression wraps an Expression which, under any satisfying
// witness, evaluates to 0 or 1. Instances are only produced by operations
// that either emit the constraint e·(e−1) = 0 or preserve the invariant
// algebraically.
type BooleanExpression struct {
	e Expression
}

// NewBooleanExpressionUnsafe wraps an arbitrary expression. This is only
// sound if the expression is separately constrained to 0 or 1; use
// GadgetBuilder.AssertBoolean instead.
func NewBooleanExpressionUnsafe(e Expression) BooleanExpression {
	return BooleanExpression{e: e}
}

// FromBooleanWire lifts a boolean wire to a boolean expression.
func FromBooleanWire(f field.Field, bw BooleanWire) BooleanExpression {
	return BooleanExpression{e: FromWire(f, bw.Wire())}
}

// BooleanFalse is the constant false.
func BooleanFalse() BooleanExpression { return BooleanExpression{} }

// BooleanTrue is the constant true.
func BooleanTrue(f field.Field) BooleanExpression {
	return BooleanExpression{e: OneExpression(f)}
}

// Expression returns the underlying linear combination.
func (b BooleanExpression) Expression() Expression { return b.e }

// Dependencies returns the wires the expression depends on.
func (b BooleanExpression) Dependencies() []Wire { return b.e.Dependencies() }

// Evaluate returns the truth value of the expression.
func (b BooleanExpression) Evaluate(values *WireValues) (bool, error) {
	v, err := b.e.Evaluate(values)
	if err != nil {
		return false, err
	}
	if !v.IsZero() && !v.IsOne() {
		return false, fmt.Errorf("boolean expression evaluated to %s", v)
	}
	return v.IsOne(), nil
}

// BinaryExpression is an ordered sequence of boolean expressions, from
// least to most significant bit. Length is an attribute of the value.
type BinaryExpression struct {
	Bits []BooleanExpression
}

// FromBinaryWire lifts a binary wire to a binary expression.
func FromBinaryWire(f field.Field, bw BinaryWire) BinaryExpression {
	bits := make([]BooleanExpression, bw.Len())
	for i, b := range bw.Bits {
		bits[i] = FromBooleanWire(f, b)
	}
	return BinaryExpression{Bits: bits}
}

// BinaryConstant decomposes a non-negative constant into the given number
// of bits.
func BinaryConstant(f field.Field, value *big.Int, width int) BinaryExpression {
	if value.Sign() < 0 || value.BitLen() > width {
		panic(fmt.Sprintf("constant %s does not fit in %d bits", value, width))
	}
	bits := make([]BooleanExpression, width)
	for i := 0; i < width; i++ {
		if value.Bit(i) == 1 {
			bits[i] = BooleanTrue(f)
		} else {
			bits[i] = BooleanFalse()
		}
	}
	return BinaryExpression{Bits: bits}
}

// Len returns the number of bits.
func (b BinaryExpression) Len() int { return len(b.Bits) }

// Truncate drops the most significant bits, keeping the given width.
func (b BinaryExpression) Truncate(width int) BinaryExpression {
	if width > len(b.Bits) {
		panic(fmt.Sprintf("cannot truncate %d bits to %d", len(b.Bits), width))
	}
	return BinaryExpression{Bits: b.Bits[:width]}
}

// Chunks splits the bits into groups of the given size; the final chunk
// may be shorter.
func (b BinaryExpression) Chunks(size int) []BinaryExpression {
	var out []BinaryExpression
	for start := 0; start < len(b.Bits); start += size {
		end := start + size
		if end > len(b.Bits) {
			end = len(b.Bits)
		}
		out = append(out, BinaryExpression{Bits: b.Bits[start:end]})
	}
	return out
}

// Join returns the weighted sum Σ 2ⁱ·bᵢ as a field expression. It panics
// if the width admits values at or above the field order, since the sum
// would then be ambiguous; use JoinAllowingOverflow for that case.
func (b BinaryExpression) Join(f field.Field) Expression {
	maxValue := new(big.Int).Lsh(big.NewInt(1), uint(len(b.Bits)))
	maxValue.Sub(maxValue, big.NewInt(1))
	if maxValue.Cmp(f.Order()) >= 0 {
		panic(fmt.Sprintf("join of %d bits can overflow the field", len(b.Bits)))
	}
	return b.JoinAllowingOverflow(f)
}

// JoinAllowingOverflow returns the weighted sum Σ 2ⁱ·bᵢ, reduced modulo
// the field order.
func (b BinaryExpression) JoinAllowingOverflow(f field.Field) Expression {
	sum := ZeroExpression()
	coeff := field.One(f)
	two := field.NewElement(f, 2)
	for _, bit := range b.Bits {
		sum = sum.Add(bit.Expression().Mul(coeff))
		coeff = coeff.Mul(two)
	}
	return sum
}

// Dependencies returns the wires the bits depend on.
func (b BinaryExpression) Dependencies() []Wire {
	var out []Wire
	for _, bit := range b.Bits {
		out = append(out, bit.Dependencies()...)
	}
	return out
}

// Evaluate recombines the bit values into an unsigned integer.
func (b BinaryExpression) Evaluate(values *WireValues) (*big.Int, error) {
	out := new(big.Int)
	for i, bit := range b.Bits {
		set, err := bit.Evaluate(values)
		if err != nil {
			return nil, err
		}
		if set {
			out.SetBit(out, i, 1)
		}
	}
	return out, nil
}
