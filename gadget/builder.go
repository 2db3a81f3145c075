package gadget

import (
	"fmt"

	"github.com/0xPolygonZero/r1cs/field"
	"github.com/0xPolygonZero/r1cs/logger"
)

// GadgetBuilder allocates wires, records constraints and registers
// witness generators. Misuse of the builder API (mismatched widths,
// over-wide splits, building twice) is a programmer error and panics;
// runtime failures are reported by Gadget.Run.
type GadgetBuilder struct {
	fld           field.Field
	nextWireIndex uint32
	constraints   []Constraint
	generators    []*WitnessGenerator
	built         bool
}

// NewGadgetBuilder returns an empty builder over the given field.
func NewGadgetBuilder(f field.Field) *GadgetBuilder {
	return &GadgetBuilder{fld: f, nextWireIndex: 1}
}

// Field returns the field the builder works over.
func (b *GadgetBuilder) Field() field.Field { return b.fld }

// Wire allocates a fresh wire.
func (b *GadgetBuilder) Wire() Wire {
	b.checkNotBuilt()
	w := Wire{Index: b.nextWireIndex}
	b.nextWireIndex++
	return w
}

// Wires allocates n fresh wires.
func (b *GadgetBuilder) Wires(n int) []Wire {
	out := make([]Wire, n)
	for i := range out {
		out[i] = b.Wire()
	}
	return out
}

// BooleanWire allocates a wire constrained to 0 or 1.
func (b *GadgetBuilder) BooleanWire() BooleanWire {
	w := b.Wire()
	b.assertBooleanWire(w)
	return NewBooleanWireUnsafe(w)
}

// BinaryWire allocates width wires, each constrained to 0 or 1.
func (b *GadgetBuilder) BinaryWire(width int) BinaryWire {
	bits := make([]BooleanWire, width)
	for i := range bits {
		bits[i] = b.BooleanWire()
	}
	return BinaryWire{Bits: bits}
}

// AddGenerator registers a witness generator with the given input wires.
func (b *GadgetBuilder) AddGenerator(inputs []Wire, generate func(*WireValues) error) {
	b.checkNotBuilt()
	b.generators = append(b.generators, NewWitnessGenerator(inputs, generate))
}

// AssertProduct appends the constraint x·y = z.
func (b *GadgetBuilder) AssertProduct(x, y, z Expression) {
	b.checkNotBuilt()
	b.constraints = append(b.constraints, Constraint{A: x, B: y, C: z})
}

// AssertEqual appends the constraint x·1 = y.
func (b *GadgetBuilder) AssertEqual(x, y Expression) {
	b.AssertProduct(x, OneExpression(b.fld), y)
}

// AssertZero appends the constraint x·1 = 0.
func (b *GadgetBuilder) AssertZero(x Expression) {
	b.AssertEqual(x, ZeroExpression())
}

// AssertBoolean appends the constraint e·(e−1) = 0 and returns the tagged
// boolean expression.
func (b *GadgetBuilder) AssertBoolean(e Expression) BooleanExpression {
	b.AssertProduct(e, e.Sub(OneExpression(b.fld)), ZeroExpression())
	return NewBooleanExpressionUnsafe(e)
}

func (b *GadgetBuilder) assertBooleanWire(w Wire) {
	b.AssertBoolean(FromWire(b.fld, w))
}

// AssertTrue asserts that a boolean expression equals 1.
func (b *GadgetBuilder) AssertTrue(x BooleanExpression) {
	b.AssertEqual(x.Expression(), OneExpression(b.fld))
}

// AssertFalse asserts that a boolean expression equals 0.
func (b *GadgetBuilder) AssertFalse(x BooleanExpression) {
	b.AssertZero(x.Expression())
}

// AssertNonzero constrains e to be non-zero: a field element is non-zero
// iff it has a multiplicative inverse. Execution fails iff e = 0.
func (b *GadgetBuilder) AssertNonzero(e Expression) {
	b.Inverse(e)
}

// AssertNonequal constrains x and y to differ.
func (b *GadgetBuilder) AssertNonequal(x, y Expression) {
	b.AssertNonzero(x.Sub(y))
}

// Build consumes the builder and freezes the accumulated constraints and
// generators into an immutable Gadget.
func (b *GadgetBuilder) Build() *Gadget {
	b.checkNotBuilt()
	b.built = true

	log := logger.Logger()
	log.Debug().
		Uint32("nbWires", b.nextWireIndex).
		Int("nbConstraints", len(b.constraints)).
		Int("nbGenerators", len(b.generators)).
		Msg("built gadget")

	return &Gadget{
		fld:         b.fld,
		numWires:    b.nextWireIndex,
		constraints: b.constraints,
		generators:  b.generators,
	}
}

func (b *GadgetBuilder) checkNotBuilt() {
	if b.built {
		panic("gadget builder already consumed by Build")
	}
}

func (b *GadgetBuilder) one() Expression { return OneExpression(b.fld) }

func (b *GadgetBuilder) checkWidths(x, y BinaryExpression, op string) {
	if x.Len() != y.Len() {
		panic(fmt.Sprintf("%s operands have mismatched widths %d and %d", op, x.Len(), y.Len()))
	}
}
