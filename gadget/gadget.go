package gadget

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/0xPolygonZero/r1cs/field"
	"github.com/0xPolygonZero/r1cs/logger"
)

// ErrStuck is returned when witness generation cannot make progress:
// some generator's declared inputs are never all bound. This indicates a
// mis-specified dependency or a cyclic gadget.
var ErrStuck = errors.New("witness generation stuck")

// ErrUnsatisfied is returned when witness generation completed but some
// constraint does not hold.
var ErrUnsatisfied = errors.New("constraint unsatisfied")

// Gadget is an immutable bundle of constraints and witness generators
// produced by GadgetBuilder.Build.
type Gadget struct {
	fld         field.Field
	numWires    uint32
	constraints []Constraint
	generators  []*WitnessGenerator
}

// Field returns the field the gadget works over.
func (g *Gadget) Field() field.Field { return g.fld }

// NumWires returns the number of wires, including the constant wire.
func (g *Gadget) NumWires() uint32 { return g.numWires }

// Constraints returns the ordered constraint list. The order is stable
// across runs given the same construction sequence.
func (g *Gadget) Constraints() []Constraint { return g.constraints }

// Generators returns the ordered generator list.
func (g *Gadget) Generators() []*WitnessGenerator { return g.generators }

// NewWireValues returns a fresh assignment over the gadget's field,
// ready to receive input bindings.
func (g *Gadget) NewWireValues() *WireValues { return NewWireValues(g.fld) }

// Run drives the witness generators against the given partial assignment
// and then checks every constraint. Generators fire in insertion order as
// their declared inputs become available. The error distinguishes a stuck
// schedule, a generator failure (e.g. inverting zero or a conflicting
// assignment) and an unsatisfied constraint.
func (g *Gadget) Run(values *WireValues) error {
	fired := bitset.New(uint(len(g.generators)))
	remaining := len(g.generators)

	progress := true
	for progress && remaining > 0 {
		progress = false
		for i, gen := range g.generators {
			if fired.Test(uint(i)) {
				continue
			}
			if !values.ContainsAll(gen.Inputs()) {
				continue
			}
			if err := gen.Generate(values); err != nil {
				return fmt.Errorf("generator %d: %w", i, err)
			}
			fired.Set(uint(i))
			remaining--
			progress = true
		}
	}

	if remaining > 0 {
		return fmt.Errorf("%w: %d generators still waiting on inputs", ErrStuck, remaining)
	}

	for i, c := range g.constraints {
		ok, err := c.Evaluate(values)
		if err != nil {
			return fmt.Errorf("constraint %d: %w", i, err)
		}
		if !ok {
			return fmt.Errorf("constraint %d (%s): %w", i, c, ErrUnsatisfied)
		}
	}
	return nil
}

// Execute runs the generators and reports whether every constraint holds
// on the resulting assignment.
func (g *Gadget) Execute(values *WireValues) bool {
	if err := g.Run(values); err != nil {
		log := logger.Logger()
		log.Debug().Err(err).Msg("gadget execution failed")
		return false
	}
	return true
}
