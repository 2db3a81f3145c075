package gadget

import "github.com/0xPolygonZero/r1cs/field"

// Not returns ¬x = 1 − x. No constraints are emitted.
func (b *GadgetBuilder) Not(x BooleanExpression) BooleanExpression {
	return NewBooleanExpressionUnsafe(b.one().Sub(x.Expression()))
}

// And returns x ∧ y = x·y.
func (b *GadgetBuilder) And(x, y BooleanExpression) BooleanExpression {
	return NewBooleanExpressionUnsafe(b.Product(x.Expression(), y.Expression()))
}

// Or returns x ∨ y = x + y − x·y.
func (b *GadgetBuilder) Or(x, y BooleanExpression) BooleanExpression {
	xe, ye := x.Expression(), y.Expression()
	return NewBooleanExpressionUnsafe(xe.Add(ye).Sub(b.Product(xe, ye)))
}

// Xor returns x ⊕ y = x + y − 2·x·y.
func (b *GadgetBuilder) Xor(x, y BooleanExpression) BooleanExpression {
	xe, ye := x.Expression(), y.Expression()
	two := field.NewElement(b.fld, 2)
	return NewBooleanExpressionUnsafe(xe.Add(ye).Sub(b.Product(xe, ye).Mul(two)))
}
