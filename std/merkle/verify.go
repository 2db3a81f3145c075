// Package merkle provides gadgets for verifying binary Merkle trees: the
// root of a leaf-to-root path, membership assertions and the root of a
// full list of leaves.
package merkle

import (
	"fmt"

	"github.com/0xPolygonZero/r1cs/gadget"
	"github.com/0xPolygonZero/r1cs/std/hash"
)

// Path is the path from a leaf to the root of a binary Merkle tree.
type Path struct {
	// Prefix is the sequence of turns when traversing up the tree. Each
	// bit gives the position of the target node relative to its parent: a
	// zero bit means the target node is the left child and its sibling
	// the right child.
	Prefix gadget.BinaryExpression
	// Siblings holds the hashes of the sibling nodes encountered along
	// the path up the tree.
	Siblings []gadget.Expression
}

// NewPath pairs a turn prefix with the sibling hashes; the lengths must
// match.
func NewPath(prefix gadget.BinaryExpression, siblings []gadget.Expression) Path {
	if prefix.Len() != len(siblings) {
		panic(fmt.Sprintf("path has %d turns but %d siblings", prefix.Len(), len(siblings)))
	}
	return Path{Prefix: prefix, Siblings: siblings}
}

// step updates an intermediate hash, given the sibling at the current
// layer.
func step(b *gadget.GadgetBuilder, node, sibling gadget.Expression,
	prefixBit gadget.BooleanExpression, compress hash.CompressionFunction) gadget.Expression {
	left := b.Selection(prefixBit, sibling, node)
	right := sibling.Add(node).Sub(left)
	return compress.Compress(b, left, right)
}

// Root computes the Merkle root implied by a leaf value and its path.
func Root(b *gadget.GadgetBuilder, leaf gadget.Expression, path Path,
	compress hash.CompressionFunction) gadget.Expression {
	current := leaf
	for i, sibling := range path.Siblings {
		current = step(b, current, sibling, path.Prefix.Bits[i], compress)
	}
	return current
}

// AssertMembership asserts that the given leaf and path hash up to the
// purported root.
func AssertMembership(b *gadget.GadgetBuilder, leaf, purportedRoot gadget.Expression,
	path Path, compress hash.CompressionFunction) {
	computedRoot := Root(b, leaf, path, compress)
	b.AssertEqual(purportedRoot, computedRoot)
}

// TreeRoot computes the root of the Merkle tree with the given leaves.
// Adjacent siblings are compressed lower index first; a level of odd
// size duplicates its final node.
func TreeRoot(b *gadget.GadgetBuilder, leaves []gadget.Expression,
	compress hash.CompressionFunction) gadget.Expression {
	if len(leaves) == 0 {
		panic("cannot compute the Merkle root of an empty tree")
	}

	level := append([]gadget.Expression(nil), leaves...)
	for len(level) > 1 {
		next := make([]gadget.Expression, 0, (len(level)+1)/2)
		for i := 0; i+1 < len(level); i += 2 {
			next = append(next, compress.Compress(b, level[i], level[i+1]))
		}
		if len(level)%2 == 1 {
			last := level[len(level)-1]
			next = append(next, compress.Compress(b, last, last))
		}
		level = next
	}
	return level[0]
}
