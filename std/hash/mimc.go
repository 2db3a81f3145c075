package hash

import (
	"fmt"
	"math"
	"math/big"

	"github.com/0xPolygonZero/r1cs/field"
	"github.com/0xPolygonZero/r1cs/gadget"
)

// MiMC is the MiMC block cipher with the x³ S-box. The cipher uses
// len(roundConstants) + 1 rounds, since the first round has no random
// constant. It requires a field where cubing is a permutation, i.e.
// gcd(3, p−1) = 1.
type MiMC struct {
	fld            field.Field
	roundConstants []field.Element
}

// NewMiMC creates a MiMC cipher with the given round constants.
func NewMiMC(f field.Field, roundConstants []field.Element) *MiMC {
	three := field.NewElement(f, 3)
	if field.LargestElement(f).IntegerModulus(three).IsZero() {
		panic("MiMC requires a field with gcd(3, p-1) = 1")
	}
	return &MiMC{fld: f, roundConstants: roundConstants}
}

// NewDefaultMiMC creates a MiMC cipher with the number of rounds
// recommended in the paper, ⌈log₃ p⌉, with round constants derived from
// the deterministic ChaCha20 stream.
func NewDefaultMiMC(f field.Field) *MiMC {
	// the first round has no constant
	return NewMiMC(f, randomElements(f, recommendedRounds(f)-1))
}

// recommendedRounds is ⌈n / log₂ 3⌉ for an n-bit field.
func recommendedRounds(f field.Field) int {
	n := field.BitLen(f)
	return int(math.Ceil(float64(n) / math.Log2(3)))
}

// Encrypt applies the MiMC rounds x ← (x + k + cᵢ)³, with a final key
// addition.
func (m *MiMC) Encrypt(b *gadget.GadgetBuilder, key, input gadget.Expression) gadget.Expression {
	current := input.Add(key)
	current = b.Exp(current, 3)

	for _, rc := range m.roundConstants {
		current = current.Add(key).Add(gadget.Constant(rc))
		current = b.Exp(current, 3)
	}

	return current.Add(key)
}

// Decrypt inverts the rounds using cube roots.
func (m *MiMC) Decrypt(b *gadget.GadgetBuilder, key, output gadget.Expression) gadget.Expression {
	current := output.Sub(key)

	for i := len(m.roundConstants) - 1; i >= 0; i-- {
		current = cubeRoot(b, current)
		current = current.Sub(key).Sub(gadget.Constant(m.roundConstants[i]))
	}

	current = cubeRoot(b, current)
	return current.Sub(key)
}

// cubeRoot introduces a witness wire r with r³ = x; the generator
// computes r = x^((2p−1)/3), the cube root exponent given by Fermat's
// little theorem.
func cubeRoot(b *gadget.GadgetBuilder, x gadget.Expression) gadget.Expression {
	f := b.Field()
	root := b.Wire()
	rootExp := gadget.FromWire(f, root)
	rootSquared := b.Product(rootExp, rootExp)
	b.AssertProduct(rootExp, rootSquared, x)

	exponent := new(big.Int).Mul(f.Order(), big.NewInt(2))
	exponent.Sub(exponent, big.NewInt(1))
	if new(big.Int).Rem(exponent, big.NewInt(3)).Sign() != 0 {
		panic(fmt.Sprintf("cube roots are not well-defined over a field of order %s", f.Order()))
	}
	exponent.Div(exponent, big.NewInt(3))

	b.AddGenerator(x.Dependencies(), func(values *gadget.WireValues) error {
		xv, err := x.Evaluate(values)
		if err != nil {
			return err
		}
		return values.Set(root, xv.ExpBig(exponent))
	})

	return rootExp
}

// MiMCPermutation is the permutation given by MiMC encryption under a
// zero key.
type MiMCPermutation struct {
	cipher *MiMC
}

// NewMiMCPermutation wraps a MiMC cipher as a permutation.
func NewMiMCPermutation(cipher *MiMC) *MiMCPermutation {
	return &MiMCPermutation{cipher: cipher}
}

func (p *MiMCPermutation) Permute(b *gadget.GadgetBuilder, x gadget.Expression) gadget.Expression {
	return p.cipher.Encrypt(b, gadget.ZeroExpression(), x)
}

func (p *MiMCPermutation) Inverse(b *gadget.GadgetBuilder, y gadget.Expression) gadget.Expression {
	return p.cipher.Decrypt(b, gadget.ZeroExpression(), y)
}
