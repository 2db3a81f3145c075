package gadget

import (
	"fmt"

	"github.com/0xPolygonZero/r1cs/field"
)

// Split decomposes x into width boolean wires, little-endian, and
// constrains their weighted sum to equal x. Execution fails if the value
// of x does not fit in width bits. Widths beyond the field's bit length
// are rejected at construction time.
func (b *GadgetBuilder) Split(x Expression, width int) BinaryExpression {
	if width > field.BitLen(b.fld) {
		panic(fmt.Sprintf("split width %d exceeds field bit length %d",
			width, field.BitLen(b.fld)))
	}

	binaryWire := b.BinaryWire(width)
	binaryExp := FromBinaryWire(b.fld, binaryWire)
	weightedSum := binaryExp.JoinAllowingOverflow(b.fld)
	b.AssertEqual(x, weightedSum)

	b.AddGenerator(x.Dependencies(), func(values *WireValues) error {
		value, err := x.Evaluate(values)
		if err != nil {
			return err
		}
		if value.BitLen() > width {
			return fmt.Errorf("value %s does not fit in %d bits", value, width)
		}
		for i, bit := range binaryWire.Bits {
			if err := values.SetBoolean(bit, value.Bit(i)); err != nil {
				return err
			}
		}
		return nil
	})

	return binaryExp
}
