// Package hash provides hash and compression constructions over gadget
// expressions: the MiMC block cipher and the Davies-Meyer,
// Miyaguchi-Preneel, Merkle-Damgard and sponge modes built on top of
// block ciphers and permutations.
package hash

import (
	"github.com/0xPolygonZero/r1cs/field"
	"github.com/0xPolygonZero/r1cs/gadget"
)

// BlockCipher is a symmetric-key block cipher over field elements.
type BlockCipher interface {
	// Encrypt the given input using the given key.
	Encrypt(b *gadget.GadgetBuilder, key, input gadget.Expression) gadget.Expression
	// Decrypt the given output using the given key.
	Decrypt(b *gadget.GadgetBuilder, key, output gadget.Expression) gadget.Expression
}

// CompressionFunction compresses two field elements into one and is
// intended to be one-way.
type CompressionFunction interface {
	Compress(b *gadget.GadgetBuilder, x, y gadget.Expression) gadget.Expression
}

// Permutation is a permutation of single field elements.
type Permutation interface {
	Permute(b *gadget.GadgetBuilder, x gadget.Expression) gadget.Expression
	Inverse(b *gadget.GadgetBuilder, y gadget.Expression) gadget.Expression
}

// MultiPermutation is a permutation whose inputs and outputs consist of
// multiple field elements.
type MultiPermutation interface {
	// Width is the size of the permutation, in field elements.
	Width() int
	Permute(b *gadget.GadgetBuilder, inputs []gadget.Expression) []gadget.Expression
	Inverse(b *gadget.GadgetBuilder, outputs []gadget.Expression) []gadget.Expression
}

// HashFunction hashes a sequence of field elements into a single field
// element.
type HashFunction interface {
	Hash(b *gadget.GadgetBuilder, blocks []gadget.Expression) gadget.Expression
}

// EncryptEvaluate evaluates a cipher's encryption function outside of any
// enclosing gadget.
func EncryptEvaluate(f field.Field, c BlockCipher, key, input field.Element) (field.Element, error) {
	b := gadget.NewGadgetBuilder(f)
	out := c.Encrypt(b, gadget.Constant(key), gadget.Constant(input))
	return evaluate(f, b, out)
}

// DecryptEvaluate evaluates a cipher's decryption function outside of any
// enclosing gadget.
func DecryptEvaluate(f field.Field, c BlockCipher, key, output field.Element) (field.Element, error) {
	b := gadget.NewGadgetBuilder(f)
	out := c.Decrypt(b, gadget.Constant(key), gadget.Constant(output))
	return evaluate(f, b, out)
}

// CompressEvaluate evaluates a compression function outside of any
// enclosing gadget.
func CompressEvaluate(f field.Field, c CompressionFunction, x, y field.Element) (field.Element, error) {
	b := gadget.NewGadgetBuilder(f)
	out := c.Compress(b, gadget.Constant(x), gadget.Constant(y))
	return evaluate(f, b, out)
}

// HashEvaluate evaluates a hash function outside of any enclosing gadget.
func HashEvaluate(f field.Field, h HashFunction, blocks []field.Element) (field.Element, error) {
	b := gadget.NewGadgetBuilder(f)
	exps := make([]gadget.Expression, len(blocks))
	for i, block := range blocks {
		exps[i] = gadget.Constant(block)
	}
	out := h.Hash(b, exps)
	return evaluate(f, b, out)
}

func evaluate(f field.Field, b *gadget.GadgetBuilder, out gadget.Expression) (field.Element, error) {
	values := gadget.NewWireValues(f)
	if err := b.Build().Run(values); err != nil {
		return field.Element{}, err
	}
	return out.Evaluate(values)
}
