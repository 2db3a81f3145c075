package gadget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xPolygonZero/r1cs/field"
)

func TestBooleanAlgebra(t *testing.T) {
	f := field.Bn128{}
	b := NewGadgetBuilder(f)
	x, y := b.BooleanWire(), b.BooleanWire()
	xe := FromBooleanWire(f, x)
	ye := FromBooleanWire(f, y)
	and := b.And(xe, ye)
	or := b.Or(xe, ye)
	xor := b.Xor(xe, ye)
	not := b.Not(xe)
	g := b.Build()

	cases := []struct {
		x, y                    bool
		and, or, xor, notResult bool
	}{
		{false, false, false, false, false, true},
		{false, true, false, true, true, true},
		{true, false, false, true, true, false},
		{true, true, true, true, false, false},
	}

	for _, tc := range cases {
		values := g.NewWireValues()
		require.NoError(t, values.SetBoolean(x, tc.x))
		require.NoError(t, values.SetBoolean(y, tc.y))
		require.True(t, g.Execute(values))
		assert.Equal(t, tc.and, mustEvalBool(t, and, values), "%v and %v", tc.x, tc.y)
		assert.Equal(t, tc.or, mustEvalBool(t, or, values), "%v or %v", tc.x, tc.y)
		assert.Equal(t, tc.xor, mustEvalBool(t, xor, values), "%v xor %v", tc.x, tc.y)
		assert.Equal(t, tc.notResult, mustEvalBool(t, not, values), "not %v", tc.x)
	}
}

func TestNotAddsNoConstraints(t *testing.T) {
	b := NewGadgetBuilder(f257)
	x := b.BooleanWire()
	before := len(b.constraints)
	b.Not(FromBooleanWire(f257, x))
	assert.Equal(t, before, len(b.constraints))
}
