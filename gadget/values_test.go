package gadget

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xPolygonZero/r1cs/field"
)

var (
	f7   = field.PrimeField(big.NewInt(7))
	f13  = field.PrimeField(big.NewInt(13))
	f97  = field.PrimeField(big.NewInt(97))
	f257 = field.PrimeField(big.NewInt(257))
)

func TestWireOneIsBound(t *testing.T) {
	values := NewWireValues(f257)
	v, ok := values.Get(WireOne)
	require.True(t, ok)
	assert.True(t, v.IsOne())

	// rebinding the same value is fine, a different value is not
	require.NoError(t, values.Set(WireOne, field.One(f257)))
	require.Error(t, values.Set(WireOne, field.NewElement(f257, 2)))
}

func TestSetConflict(t *testing.T) {
	values := NewWireValues(f257)
	w := Wire{Index: 1}
	require.NoError(t, values.Set(w, field.NewElement(f257, 42)))
	require.NoError(t, values.Set(w, field.NewElement(f257, 42)))
	require.Error(t, values.Set(w, field.NewElement(f257, 43)))
}

func TestContains(t *testing.T) {
	values := NewWireValues(f257)
	w1, w2 := Wire{Index: 1}, Wire{Index: 2}
	assert.False(t, values.Contains(w1))
	require.NoError(t, values.Set(w1, field.NewElement(f257, 3)))
	assert.True(t, values.Contains(w1))
	assert.False(t, values.ContainsAll([]Wire{w1, w2}))
	require.NoError(t, values.Set(w2, field.NewElement(f257, 4)))
	assert.True(t, values.ContainsAll([]Wire{w1, w2}))
}

func TestSetBinary(t *testing.T) {
	b := NewGadgetBuilder(f257)
	bw := b.BinaryWire(4)
	values := NewWireValues(f257)
	require.NoError(t, values.SetBinary(bw, big.NewInt(11)))

	bits := make([]bool, 4)
	for i, bit := range bw.Bits {
		v, err := values.GetBoolean(bit)
		require.NoError(t, err)
		bits[i] = v
	}
	assert.Equal(t, []bool{true, true, false, true}, bits)

	require.Error(t, NewWireValues(f257).SetBinary(bw, big.NewInt(16)))
}

func TestClone(t *testing.T) {
	values := NewWireValues(f257)
	w := Wire{Index: 1}
	require.NoError(t, values.Set(w, field.NewElement(f257, 5)))
	clone := values.Clone()
	require.NoError(t, clone.Set(Wire{Index: 2}, field.NewElement(f257, 6)))
	assert.True(t, clone.Contains(w))
	assert.False(t, values.Contains(Wire{Index: 2}))
}
