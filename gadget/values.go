package gadget

import (
	"fmt"
	"math/big"

	"github.com/bits-and-blooms/bitset"

	"github.com/0xPolygonZero/r1cs/field"
)

// WireValues is an assignment of field elements to wires. The constant
// wire is implicitly bound to 1 and may never be rebound to a different
// value.
type WireValues struct {
	fld    field.Field
	values map[Wire]field.Element
	bound  *bitset.BitSet
}

// NewWireValues returns an assignment containing only the constant wire.
func NewWireValues(f field.Field) *WireValues {
	v := &WireValues{
		fld:    f,
		values: make(map[Wire]field.Element),
		bound:  bitset.New(64),
	}
	v.values[WireOne] = field.One(f)
	v.bound.Set(0)
	return v
}

// Field returns the field the values live in.
func (v *WireValues) Field() field.Field { return v.fld }

// Get returns the value bound to w.
func (v *WireValues) Get(w Wire) (field.Element, bool) {
	e, ok := v.values[w]
	return e, ok
}

// GetBoolean returns the value of a boolean wire.
func (v *WireValues) GetBoolean(bw BooleanWire) (bool, error) {
	e, ok := v.Get(bw.Wire())
	if !ok {
		return false, fmt.Errorf("no value for %s", bw.Wire())
	}
	return !e.IsZero(), nil
}

// Set binds w to value. Binding a wire that already holds a different
// value is an error; rebinding the same value is a no-op, since several
// generators may legitimately fix the same wire.
func (v *WireValues) Set(w Wire, value field.Element) error {
	if old, ok := v.values[w]; ok {
		if !old.Equal(value) {
			return fmt.Errorf("%s already has value %s, cannot set to %s", w, old, value)
		}
		return nil
	}
	v.values[w] = value
	v.bound.Set(uint(w.Index))
	return nil
}

// SetBoolean binds a boolean wire to 0 or 1.
func (v *WireValues) SetBoolean(bw BooleanWire, b bool) error {
	return v.Set(bw.Wire(), field.FromBool(v.fld, b))
}

// SetBinary binds each bit of a binary wire to the little-endian
// decomposition of value.
func (v *WireValues) SetBinary(bw BinaryWire, value *big.Int) error {
	if value.BitLen() > bw.Len() {
		return fmt.Errorf("value %s does not fit in %d bits", value, bw.Len())
	}
	for i, bit := range bw.Bits {
		if err := v.SetBoolean(bit, value.Bit(i) == 1); err != nil {
			return err
		}
	}
	return nil
}

// Contains reports whether w is bound.
func (v *WireValues) Contains(w Wire) bool {
	return v.bound.Test(uint(w.Index))
}

// ContainsAll reports whether every wire in the list is bound.
func (v *WireValues) ContainsAll(wires []Wire) bool {
	for _, w := range wires {
		if !v.Contains(w) {
			return false
		}
	}
	return true
}

// Assignments returns a copy of the wire bindings.
func (v *WireValues) Assignments() map[Wire]field.Element {
	out := make(map[Wire]field.Element, len(v.values))
	for w, e := range v.values {
		out[w] = e
	}
	return out
}

// Clone returns an independent copy of the assignment.
func (v *WireValues) Clone() *WireValues {
	out := &WireValues{
		fld:    v.fld,
		values: make(map[Wire]field.Element, len(v.values)),
		bound:  v.bound.Clone(),
	}
	for w, e := range v.values {
		out.values[w] = e
	}
	return out
}
