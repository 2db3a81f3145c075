package gadget

import "fmt"

// Constraint is an R1CS row a·b = c, where a, b and c are linear
// combinations of wires.
type Constraint struct {
	A, B, C Expression
}

// Evaluate reports whether the constraint holds under the given
// assignment. It fails if any involved wire is unbound.
func (c Constraint) Evaluate(values *WireValues) (bool, error) {
	av, err := c.A.Evaluate(values)
	if err != nil {
		return false, err
	}
	bv, err := c.B.Evaluate(values)
	if err != nil {
		return false, err
	}
	cv, err := c.C.Evaluate(values)
	if err != nil {
		return false, err
	}
	return av.Mul(bv).Equal(cv), nil
}

func (c Constraint) String() string {
	return fmt.Sprintf("(%s) * (%s) = %s", c.A, c.B, c.C)
}

// WitnessGenerator extends a partial witness with the values of the wires
// it is responsible for. Its declared inputs must all be bound before it
// runs; it must be deterministic given those inputs.
type WitnessGenerator struct {
	inputs   []Wire
	generate func(*WireValues) error
}

// NewWitnessGenerator creates a generator from its input wires and body.
func NewWitnessGenerator(inputs []Wire, generate func(*WireValues) error) *WitnessGenerator {
	return &WitnessGenerator{inputs: inputs, generate: generate}
}

// Inputs returns the wires whose values must be set before the generator
// can run.
func (g *WitnessGenerator) Inputs() []Wire { return g.inputs }

// Generate runs the generator.
func (g *WitnessGenerator) Generate(values *WireValues) error {
	return g.generate(values)
}
