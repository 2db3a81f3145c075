package gadget

import (
	"sort"

	"github.com/0xPolygonZero/r1cs/field"
)

// SortAscending returns expressions bound to the values of the inputs in
// ascending order. The outputs are constrained to be a permutation of the
// inputs with each adjacent pair ordered.
func (b *GadgetBuilder) SortAscending(inputs []Expression) []Expression {
	n := len(inputs)
	if n == 0 {
		return nil
	}

	outputWires := b.Wires(n)
	outputs := make([]Expression, n)
	for i, w := range outputWires {
		outputs[i] = FromWire(b.fld, w)
	}

	b.AssertPermutation(inputs, outputs)
	for i := 0; i+1 < n; i++ {
		b.AssertLe(outputs[i], outputs[i+1])
	}

	deps := make([]Wire, 0)
	for _, e := range inputs {
		deps = append(deps, e.Dependencies()...)
	}
	inputsCopy := append([]Expression(nil), inputs...)
	b.AddGenerator(deps, func(values *WireValues) error {
		items := make([]field.Element, n)
		for i, e := range inputsCopy {
			v, err := e.Evaluate(values)
			if err != nil {
				return err
			}
			items[i] = v
		}
		sort.SliceStable(items, func(i, j int) bool { return items[i].Cmp(items[j]) < 0 })
		for i, item := range items {
			if err := values.Set(outputWires[i], item); err != nil {
				return err
			}
		}
		return nil
	})

	return outputs
}

// SortDescending returns expressions bound to the values of the inputs in
// descending order.
func (b *GadgetBuilder) SortDescending(inputs []Expression) []Expression {
	items := b.SortAscending(inputs)
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}
