package hash

import (
	"github.com/0xPolygonZero/r1cs/field"
	"github.com/0xPolygonZero/r1cs/gadget"
)

// MerkleDamgard hashes a sequence of blocks by folding each into the
// running state with a one-way compression function, starting from a
// fixed initial value. Length padding is the caller's concern.
type MerkleDamgard struct {
	initialValue field.Element
	compress     CompressionFunction
}

// NewMerkleDamgard creates a Merkle-Damgard hash function from the given
// initial value and compression function.
func NewMerkleDamgard(initialValue field.Element, compress CompressionFunction) *MerkleDamgard {
	return &MerkleDamgard{initialValue: initialValue, compress: compress}
}

// NewMerkleDamgardDefaultIV derives the initial value from the
// deterministic ChaCha20 stream.
func NewMerkleDamgardDefaultIV(f field.Field, compress CompressionFunction) *MerkleDamgard {
	return NewMerkleDamgard(randomElements(f, 1)[0], compress)
}

func (md *MerkleDamgard) Hash(b *gadget.GadgetBuilder, blocks []gadget.Expression) gadget.Expression {
	current := gadget.Constant(md.initialValue)
	for _, block := range blocks {
		current = md.compress.Compress(b, current, block)
	}
	return current
}
