package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xPolygonZero/r1cs/field"
	"github.com/0xPolygonZero/r1cs/gadget"
)

func TestMiyaguchiPreneel(t *testing.T) {
	mp := NewMiyaguchiPreneel(testCipher{})

	b := gadget.NewGadgetBuilder(f7)
	xWire, yWire := b.Wire(), b.Wire()
	x := gadget.FromWire(f7, xWire)
	y := gadget.FromWire(f7, yWire)
	compressed := mp.Compress(b, x, y)
	g := b.Build()

	values := g.NewWireValues()
	require.NoError(t, values.Set(xWire, field.NewElement(f7, 2)))
	require.NoError(t, values.Set(yWire, field.NewElement(f7, 3)))
	require.True(t, g.Execute(values))

	// E_x(y) + x + y = (2*2 + 4*3 + 3*2*3) + 2 + 3 = 39 = 4 mod 7
	v, err := compressed.Evaluate(values)
	require.NoError(t, err)
	assert.True(t, field.NewElement(f7, 4).Equal(v))
}
