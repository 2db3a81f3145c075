package hash

import (
	"fmt"

	"github.com/0xPolygonZero/r1cs/gadget"
)

// Sponge is a sponge function over field elements. The input and capacity
// sections of the state are stored in separate expressions, so absorbing
// into the rate section never touches the capacity.
type Sponge struct {
	permutation MultiPermutation
	rate        int
	capacity    int
}

// NewSponge creates a sponge function from the given state permutation,
// rate (input section size) and capacity, both in field elements.
func NewSponge(permutation MultiPermutation, rate, capacity int) *Sponge {
	if rate+capacity != permutation.Width() {
		panic(fmt.Sprintf("sponge state size %d+%d must match permutation width %d",
			rate, capacity, permutation.Width()))
	}
	return &Sponge{permutation: permutation, rate: rate, capacity: capacity}
}

// Evaluate absorbs the inputs and squeezes outputLen elements.
func (s *Sponge) Evaluate(b *gadget.GadgetBuilder, inputs []gadget.Expression, outputLen int) []gadget.Expression {
	inputSection := make([]gadget.Expression, s.rate)
	capacitySection := make([]gadget.Expression, s.capacity)
	for i := range inputSection {
		inputSection[i] = gadget.ZeroExpression()
	}
	for i := range capacitySection {
		capacitySection[i] = gadget.ZeroExpression()
	}

	permute := func() {
		state := append(append([]gadget.Expression(nil), inputSection...), capacitySection...)
		newState := s.permutation.Permute(b, state)
		if len(newState) != len(state) {
			panic("permutation changed the state size")
		}
		inputSection = append([]gadget.Expression(nil), newState[:s.rate]...)
		capacitySection = append([]gadget.Expression(nil), newState[s.rate:]...)
	}

	for start := 0; start < len(inputs); start += s.rate {
		end := start + s.rate
		if end > len(inputs) {
			end = len(inputs)
		}
		for i, element := range inputs[start:end] {
			inputSection[i] = inputSection[i].Add(element)
		}
		permute()
	}

	outputs := append([]gadget.Expression(nil), inputSection...)
	for len(outputs) < outputLen {
		permute()
		outputs = append(outputs, inputSection...)
	}

	return outputs[:outputLen]
}

// Hash absorbs the blocks and squeezes a single element.
func (s *Sponge) Hash(b *gadget.GadgetBuilder, blocks []gadget.Expression) gadget.Expression {
	return s.Evaluate(b, blocks, 1)[0]
}
