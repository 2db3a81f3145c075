package gadget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xPolygonZero/r1cs/field"
)

func constants(f field.Field, values ...int64) []Expression {
	out := make([]Expression, len(values))
	for i, v := range values {
		out[i] = Constant(field.NewElement(f, v))
	}
	return out
}

func TestRoute2x2(t *testing.T) {
	f := field.Bn128{}
	b := NewGadgetBuilder(f)
	b.AssertPermutation(constants(f, 1, 2), constants(f, 2, 1))
	g := b.Build()
	assert.True(t, g.Execute(g.NewWireValues()))
}

func TestRoute3x3(t *testing.T) {
	f := field.Bn128{}
	b := NewGadgetBuilder(f)
	b.AssertPermutation(constants(f, 1, 2, 3), constants(f, 2, 1, 3))
	g := b.Build()
	assert.True(t, g.Execute(g.NewWireValues()))
}

func TestRoute5x5(t *testing.T) {
	f := field.Bn128{}
	b := NewGadgetBuilder(f)
	xs := b.Wires(5)
	ys := b.Wires(5)
	xsExp := make([]Expression, 5)
	ysExp := make([]Expression, 5)
	for i := 0; i < 5; i++ {
		xsExp[i] = FromWire(f, xs[i])
		ysExp[i] = FromWire(f, ys[i])
	}
	b.AssertPermutation(xsExp, ysExp)
	g := b.Build()

	set := func(values *WireValues, wires []Wire, vs ...int64) {
		for i, v := range vs {
			require.NoError(t, values.Set(wires[i], field.NewElement(f, v)))
		}
	}

	values := g.NewWireValues()
	set(values, xs, 0, 1, 2, 3, 4)
	set(values, ys, 1, 4, 0, 3, 2)
	assert.True(t, g.Execute(values))

	// duplicates are routed too
	values = g.NewWireValues()
	set(values, xs, 0, 1, 2, 0, 1)
	set(values, ys, 1, 1, 0, 0, 2)
	assert.True(t, g.Execute(values))
}

func TestPermutationLength5(t *testing.T) {
	f := field.Bn128{}
	b := NewGadgetBuilder(f)
	xs := b.Wires(5)
	ys := b.Wires(5)
	xsExp := make([]Expression, 5)
	ysExp := make([]Expression, 5)
	for i := 0; i < 5; i++ {
		xsExp[i] = FromWire(f, xs[i])
		ysExp[i] = FromWire(f, ys[i])
	}
	b.AssertPermutation(xsExp, ysExp)
	g := b.Build()

	bind := func(values *WireValues, wires []Wire, vs []int64) {
		for i, v := range vs {
			require.NoError(t, values.Set(wires[i], field.NewElement(f, v)))
		}
	}

	values := g.NewWireValues()
	bind(values, xs, []int64{3, 1, 4, 1, 5})
	bind(values, ys, []int64{5, 4, 3, 1, 1})
	assert.True(t, g.Execute(values))

	// 2 is not in the source list
	values = g.NewWireValues()
	bind(values, xs, []int64{3, 1, 4, 1, 5})
	bind(values, ys, []int64{5, 4, 3, 1, 2})
	assert.False(t, g.Execute(values))
}

func TestRoute4x4(t *testing.T) {
	f := field.Bn128{}
	b := NewGadgetBuilder(f)
	xs := b.Wires(4)
	ys := b.Wires(4)
	xsExp := make([]Expression, 4)
	ysExp := make([]Expression, 4)
	for i := 0; i < 4; i++ {
		xsExp[i] = FromWire(f, xs[i])
		ysExp[i] = FromWire(f, ys[i])
	}
	b.AssertPermutation(xsExp, ysExp)
	g := b.Build()

	set := func(values *WireValues, wires []Wire, vs ...int64) {
		for i, v := range vs {
			require.NoError(t, values.Set(wires[i], field.NewElement(f, v)))
		}
	}

	// a rotation
	values := g.NewWireValues()
	set(values, xs, 0, 1, 2, 3)
	set(values, ys, 1, 2, 3, 0)
	assert.True(t, g.Execute(values))

	// the identity
	values = g.NewWireValues()
	set(values, xs, 5, 6, 7, 8)
	set(values, ys, 5, 6, 7, 8)
	assert.True(t, g.Execute(values))

	// not a permutation
	values = g.NewWireValues()
	set(values, xs, 0, 1, 2, 3)
	set(values, ys, 0, 1, 2, 2)
	assert.False(t, g.Execute(values))
}

func TestNotAPermutationFails(t *testing.T) {
	f := field.Bn128{}
	b := NewGadgetBuilder(f)
	b.AssertPermutation(constants(f, 1, 2, 2), constants(f, 1, 2, 1))
	g := b.Build()
	assert.False(t, g.Execute(g.NewWireValues()))
}

func TestPermutationLengthsDifferPanics(t *testing.T) {
	f := field.Bn128{}
	b := NewGadgetBuilder(f)
	require.Panics(t, func() {
		b.AssertPermutation(constants(f, 1, 2, 3), constants(f, 1, 2))
	})
}

func TestPermutationEmptyAndSingleton(t *testing.T) {
	f := field.Bn128{}
	b := NewGadgetBuilder(f)
	b.AssertPermutation(nil, nil)
	b.AssertPermutation(constants(f, 7), constants(f, 7))
	g := b.Build()
	assert.True(t, g.Execute(g.NewWireValues()))

	b = NewGadgetBuilder(f)
	b.AssertPermutation(constants(f, 7), constants(f, 8))
	g = b.Build()
	assert.False(t, g.Execute(g.NewWireValues()))
}

func TestPermutationConstraintCounts(t *testing.T) {
	f := field.Bn128{}

	// a single switch: one boolean constraint, one product, two target
	// equalities
	b := NewGadgetBuilder(f)
	xs := b.Wires(2)
	ys := b.Wires(2)
	b.AssertPermutation(
		[]Expression{FromWire(f, xs[0]), FromWire(f, xs[1])},
		[]Expression{FromWire(f, ys[0]), FromWire(f, ys[1])})
	assert.Len(t, b.constraints, 4)

	// n = 4: five switches (2 constraints each) plus two 2x2 base cases
	// (2 equalities each)
	b = NewGadgetBuilder(f)
	xs = b.Wires(4)
	ys = b.Wires(4)
	xsExp := make([]Expression, 4)
	ysExp := make([]Expression, 4)
	for i := range xs {
		xsExp[i] = FromWire(f, xs[i])
		ysExp[i] = FromWire(f, ys[i])
	}
	b.AssertPermutation(xsExp, ysExp)
	assert.Len(t, b.constraints, 14)
}
