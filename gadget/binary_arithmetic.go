package gadget

import "github.com/0xPolygonZero/r1cs/field"

// BinarySum adds two binary expressions with a ripple-carry adder. The
// result is one bit wider than the wider input, so no overflow can occur.
func (b *GadgetBuilder) BinarySum(x, y BinaryExpression) BinaryExpression {
	sum, carry := b.rippleCarrySum(x, y)
	sum.Bits = append(sum.Bits, carry)
	return sum
}

// BinarySumWrapping adds two binary expressions, discarding the final
// carry. The result has the width of the wider input.
func (b *GadgetBuilder) BinarySumWrapping(x, y BinaryExpression) BinaryExpression {
	sum, _ := b.rippleCarrySum(x, y)
	return sum
}

// BinarySumAssertingNoOverflow adds two binary expressions and constrains
// the final carry to zero.
func (b *GadgetBuilder) BinarySumAssertingNoOverflow(x, y BinaryExpression) BinaryExpression {
	sum, carry := b.rippleCarrySum(x, y)
	b.AssertFalse(carry)
	return sum
}

// rippleCarrySum chains full adders across the bit positions. Each
// position computes s = a ⊕ b ⊕ cin and cout = a·b + cin·(a ⊕ b); the
// two carry terms cannot both be 1, so their plain sum is boolean.
func (b *GadgetBuilder) rippleCarrySum(x, y BinaryExpression) (BinaryExpression, BooleanExpression) {
	width := x.Len()
	if y.Len() > width {
		width = y.Len()
	}

	bitAt := func(e BinaryExpression, i int) BooleanExpression {
		if i < e.Len() {
			return e.Bits[i]
		}
		return BooleanFalse()
	}

	bits := make([]BooleanExpression, width)
	carry := BooleanFalse()
	for i := 0; i < width; i++ {
		a := bitAt(x, i)
		c := bitAt(y, i)
		aXorC := b.Xor(a, c)
		bits[i] = b.Xor(aXorC, carry)
		generate := b.And(a, c)
		propagate := b.And(carry, aXorC)
		carry = NewBooleanExpressionUnsafe(
			generate.Expression().Add(propagate.Expression()))
	}
	return BinaryExpression{Bits: bits}, carry
}

// BinaryAssertZero constrains every bit of x to zero. The expression may
// be wider than a field element, so bits are joined in chunks that cannot
// overflow.
func (b *GadgetBuilder) BinaryAssertZero(x BinaryExpression) {
	chunkBits := field.BitLen(b.fld) - 1
	for _, chunk := range x.Chunks(chunkBits) {
		b.AssertZero(chunk.Join(b.fld))
	}
}
