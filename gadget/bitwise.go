package gadget

// BitwiseNot returns ~x.
func (b *GadgetBuilder) BitwiseNot(x BinaryExpression) BinaryExpression {
	bits := make([]BooleanExpression, x.Len())
	for i, bit := range x.Bits {
		bits[i] = b.Not(bit)
	}
	return BinaryExpression{Bits: bits}
}

// BitwiseAnd returns x & y. The operands must have equal widths.
func (b *GadgetBuilder) BitwiseAnd(x, y BinaryExpression) BinaryExpression {
	b.checkWidths(x, y, "bitwise and")
	bits := make([]BooleanExpression, x.Len())
	for i := range bits {
		bits[i] = b.And(x.Bits[i], y.Bits[i])
	}
	return BinaryExpression{Bits: bits}
}

// BitwiseOr returns x | y. The operands must have equal widths.
func (b *GadgetBuilder) BitwiseOr(x, y BinaryExpression) BinaryExpression {
	b.checkWidths(x, y, "bitwise or")
	bits := make([]BooleanExpression, x.Len())
	for i := range bits {
		bits[i] = b.Or(x.Bits[i], y.Bits[i])
	}
	return BinaryExpression{Bits: bits}
}

// BitwiseXor returns x ^ y. The operands must have equal widths.
func (b *GadgetBuilder) BitwiseXor(x, y BinaryExpression) BinaryExpression {
	b.checkWidths(x, y, "bitwise xor")
	bits := make([]BooleanExpression, x.Len())
	for i := range bits {
		bits[i] = b.Xor(x.Bits[i], y.Bits[i])
	}
	return BinaryExpression{Bits: bits}
}

// RotateIncSignificance rotates bits towards higher significance, i.e. a
// left rotate.
func (b *GadgetBuilder) RotateIncSignificance(x BinaryExpression, n int) BinaryExpression {
	l := x.Len()
	bits := make([]BooleanExpression, l)
	for i := range bits {
		bits[i] = x.Bits[(l+i-n%l)%l]
	}
	return BinaryExpression{Bits: bits}
}

// RotateDecSignificance rotates bits towards lower significance, i.e. a
// right rotate.
func (b *GadgetBuilder) RotateDecSignificance(x BinaryExpression, n int) BinaryExpression {
	l := x.Len()
	bits := make([]BooleanExpression, l)
	for i := range bits {
		bits[i] = x.Bits[(i+n)%l]
	}
	return BinaryExpression{Bits: bits}
}

// ShiftIncSignificance shifts bits towards higher significance, filling
// with zeros, i.e. a left shift.
func (b *GadgetBuilder) ShiftIncSignificance(x BinaryExpression, n int) BinaryExpression {
	bits := make([]BooleanExpression, x.Len())
	for i := range bits {
		if i < n {
			bits[i] = BooleanFalse()
		} else {
			bits[i] = x.Bits[i-n]
		}
	}
	return BinaryExpression{Bits: bits}
}

// ShiftDecSignificance shifts bits towards lower significance, filling
// with zeros, i.e. a right shift.
func (b *GadgetBuilder) ShiftDecSignificance(x BinaryExpression, n int) BinaryExpression {
	l := x.Len()
	bits := make([]BooleanExpression, l)
	for i := range bits {
		if i < l-n {
			bits[i] = x.Bits[i+n]
		} else {
			bits[i] = BooleanFalse()
		}
	}
	return BinaryExpression{Bits: bits}
}
