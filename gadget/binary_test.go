package gadget

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalBinary(t *testing.T, e BinaryExpression, values *WireValues) *big.Int {
	t.Helper()
	v, err := e.Evaluate(values)
	require.NoError(t, err)
	return v
}

func TestBinarySum(t *testing.T) {
	b := NewGadgetBuilder(f257)
	x := b.BinaryWire(4)
	y := b.BinaryWire(4)
	sum := b.BinarySum(FromBinaryWire(f257, x), FromBinaryWire(f257, y))
	g := b.Build()

	assert.Equal(t, 5, sum.Len())

	// 10 + 3 = 13
	values := g.NewWireValues()
	require.NoError(t, values.SetBinary(x, big.NewInt(10)))
	require.NoError(t, values.SetBinary(y, big.NewInt(3)))
	require.True(t, g.Execute(values))
	assert.Zero(t, big.NewInt(13).Cmp(evalBinary(t, sum, values)))

	// 10 + 11 = 21
	values = g.NewWireValues()
	require.NoError(t, values.SetBinary(x, big.NewInt(10)))
	require.NoError(t, values.SetBinary(y, big.NewInt(11)))
	require.True(t, g.Execute(values))
	assert.Zero(t, big.NewInt(21).Cmp(evalBinary(t, sum, values)))
}

func TestBinarySumWrapping(t *testing.T) {
	b := NewGadgetBuilder(f257)
	x := b.BinaryWire(4)
	y := b.BinaryWire(4)
	sum := b.BinarySumWrapping(FromBinaryWire(f257, x), FromBinaryWire(f257, y))
	g := b.Build()

	assert.Equal(t, 4, sum.Len())

	// 10 + 11 = 21 % 16 = 5
	values := g.NewWireValues()
	require.NoError(t, values.SetBinary(x, big.NewInt(10)))
	require.NoError(t, values.SetBinary(y, big.NewInt(11)))
	require.True(t, g.Execute(values))
	assert.Zero(t, big.NewInt(5).Cmp(evalBinary(t, sum, values)))
}

func TestBinarySumAssertingNoOverflow(t *testing.T) {
	b := NewGadgetBuilder(f257)
	x := b.BinaryWire(4)
	y := b.BinaryWire(4)
	b.BinarySumAssertingNoOverflow(FromBinaryWire(f257, x), FromBinaryWire(f257, y))
	g := b.Build()

	values := g.NewWireValues()
	require.NoError(t, values.SetBinary(x, big.NewInt(10)))
	require.NoError(t, values.SetBinary(y, big.NewInt(3)))
	assert.True(t, g.Execute(values))

	values = g.NewWireValues()
	require.NoError(t, values.SetBinary(x, big.NewInt(10)))
	require.NoError(t, values.SetBinary(y, big.NewInt(11)))
	assert.False(t, g.Execute(values))
}

func TestBinarySumMixedWidths(t *testing.T) {
	b := NewGadgetBuilder(f257)
	x := b.BinaryWire(2)
	y := b.BinaryWire(5)
	sum := b.BinarySum(FromBinaryWire(f257, x), FromBinaryWire(f257, y))
	g := b.Build()

	assert.Equal(t, 6, sum.Len())

	// 3 + 29 = 32
	values := g.NewWireValues()
	require.NoError(t, values.SetBinary(x, big.NewInt(3)))
	require.NoError(t, values.SetBinary(y, big.NewInt(29)))
	require.True(t, g.Execute(values))
	assert.Zero(t, big.NewInt(32).Cmp(evalBinary(t, sum, values)))
}

func TestBitwiseNot(t *testing.T) {
	b := NewGadgetBuilder(f257)
	x := b.BinaryWire(8)
	notX := b.BitwiseNot(FromBinaryWire(f257, x))
	g := b.Build()

	// ~00010011 = 11101100
	values := g.NewWireValues()
	require.NoError(t, values.SetBinary(x, big.NewInt(0b00010011)))
	require.True(t, g.Execute(values))
	assert.Zero(t, big.NewInt(0b11101100).Cmp(evalBinary(t, notX, values)))
}

func TestBitwiseOps(t *testing.T) {
	b := NewGadgetBuilder(f257)
	x := b.BinaryWire(8)
	y := b.BinaryWire(8)
	and := b.BitwiseAnd(FromBinaryWire(f257, x), FromBinaryWire(f257, y))
	or := b.BitwiseOr(FromBinaryWire(f257, x), FromBinaryWire(f257, y))
	xor := b.BitwiseXor(FromBinaryWire(f257, x), FromBinaryWire(f257, y))
	g := b.Build()

	values := g.NewWireValues()
	require.NoError(t, values.SetBinary(x, big.NewInt(0b11111100)))
	require.NoError(t, values.SetBinary(y, big.NewInt(0b00111111)))
	require.True(t, g.Execute(values))
	assert.Zero(t, big.NewInt(0b00111100).Cmp(evalBinary(t, and, values)))
	assert.Zero(t, big.NewInt(0b11111111).Cmp(evalBinary(t, or, values)))
	assert.Zero(t, big.NewInt(0b11000011).Cmp(evalBinary(t, xor, values)))
}

func TestBitwiseWidthMismatchPanics(t *testing.T) {
	b := NewGadgetBuilder(f257)
	x := b.BinaryWire(8)
	y := b.BinaryWire(4)
	require.Panics(t, func() {
		b.BitwiseAnd(FromBinaryWire(f257, x), FromBinaryWire(f257, y))
	})
}

func TestRotateDecSignificance(t *testing.T) {
	b := NewGadgetBuilder(f257)
	x := b.BinaryWire(8)
	rot := b.RotateDecSignificance(FromBinaryWire(f257, x), 3)
	g := b.Build()

	// 00010011 >>> 3 = 01100010
	values := g.NewWireValues()
	require.NoError(t, values.SetBinary(x, big.NewInt(0b00010011)))
	require.True(t, g.Execute(values))
	assert.Zero(t, big.NewInt(0b01100010).Cmp(evalBinary(t, rot, values)))
}

func TestRotateDecSignificanceMultipleWraps(t *testing.T) {
	b := NewGadgetBuilder(f257)
	x := b.BinaryWire(8)
	rot := b.RotateDecSignificance(FromBinaryWire(f257, x), 19)
	g := b.Build()

	// rotating by 19 is the same as rotating by 3
	values := g.NewWireValues()
	require.NoError(t, values.SetBinary(x, big.NewInt(0b00010011)))
	require.True(t, g.Execute(values))
	assert.Zero(t, big.NewInt(0b01100010).Cmp(evalBinary(t, rot, values)))
}

func TestRotateIncSignificance(t *testing.T) {
	b := NewGadgetBuilder(f257)
	x := b.BinaryWire(8)
	rot := b.RotateIncSignificance(FromBinaryWire(f257, x), 3)
	g := b.Build()

	// 00010011 <<< 3 = 10011000
	values := g.NewWireValues()
	require.NoError(t, values.SetBinary(x, big.NewInt(0b00010011)))
	require.True(t, g.Execute(values))
	assert.Zero(t, big.NewInt(0b10011000).Cmp(evalBinary(t, rot, values)))
}

func TestShifts(t *testing.T) {
	b := NewGadgetBuilder(f257)
	x := b.BinaryWire(8)
	left := b.ShiftIncSignificance(FromBinaryWire(f257, x), 2)
	right := b.ShiftDecSignificance(FromBinaryWire(f257, x), 2)
	g := b.Build()

	values := g.NewWireValues()
	require.NoError(t, values.SetBinary(x, big.NewInt(0b00010011)))
	require.True(t, g.Execute(values))
	assert.Zero(t, big.NewInt(0b01001100).Cmp(evalBinary(t, left, values)))
	assert.Zero(t, big.NewInt(0b00000100).Cmp(evalBinary(t, right, values)))
}

func TestBinaryAssertZero(t *testing.T) {
	b := NewGadgetBuilder(f257)
	x := b.BinaryWire(10)
	b.BinaryAssertZero(FromBinaryWire(f257, x))
	g := b.Build()

	values := g.NewWireValues()
	require.NoError(t, values.SetBinary(x, big.NewInt(0)))
	assert.True(t, g.Execute(values))

	values = g.NewWireValues()
	require.NoError(t, values.SetBinary(x, big.NewInt(1)))
	assert.False(t, g.Execute(values))
}
