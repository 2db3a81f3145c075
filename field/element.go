package field

import (
	"fmt"
	"io"
	"math/big"
)

// Element is an element of a prime field: a non-negative integer strictly
// below the field order. Elements are immutable; arithmetic returns new
// values. The zero value of Element is not usable, use the constructors.
type Element struct {
	n     *big.Int
	field Field
}

// NewElement reduces v modulo the field order.
func NewElement(f Field, v int64) Element {
	return FromBig(f, big.NewInt(v))
}

// FromBig reduces v modulo the field order. Negative values are mapped to
// their canonical representative in [0, order), so -1 becomes order - 1.
func FromBig(f Field, v *big.Int) Element {
	n := new(big.Int).Mod(v, f.Order())
	return Element{n: n, field: f}
}

// FromBool returns one for true, zero for false.
func FromBool(f Field, b bool) Element {
	if b {
		return One(f)
	}
	return Zero(f)
}

// Zero returns the additive identity of f.
func Zero(f Field) Element { return Element{n: new(big.Int), field: f} }

// One returns the multiplicative identity of f.
func One(f Field) Element { return Element{n: big.NewInt(1), field: f} }

// LargestElement returns order - 1.
func LargestElement(f Field) Element {
	return Element{n: new(big.Int).Sub(f.Order(), big.NewInt(1)), field: f}
}

// RandomElement returns an element sampled uniformly from [0, order),
// reading entropy from r. Rejection sampling keeps the distribution
// uniform.
func RandomElement(f Field, r io.Reader) (Element, error) {
	bits := BitLen(f)
	nbBytes := (bits + 7) / 8
	buf := make([]byte, nbBytes)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return Element{}, err
		}
		// mask excess high bits so the rejection rate stays below 1/2
		buf[0] &= byte(0xff >> (uint(nbBytes*8-bits) % 8))
		n := new(big.Int).SetBytes(buf)
		if n.Cmp(f.Order()) < 0 {
			return Element{n: n, field: f}, nil
		}
	}
}

// Field returns the field this element belongs to.
func (e Element) Field() Field { return e.field }

// BigInt returns a copy of the canonical representative.
func (e Element) BigInt() *big.Int { return new(big.Int).Set(e.n) }

func (e Element) IsZero() bool { return e.n.Sign() == 0 }

func (e Element) IsOne() bool { return e.n.Cmp(big.NewInt(1)) == 0 }

// Equal is integer equality on the canonical representatives.
func (e Element) Equal(o Element) bool {
	e.checkCompatible(o)
	return e.n.Cmp(o.n) == 0
}

// Cmp is the canonical integer order on representatives.
func (e Element) Cmp(o Element) int {
	e.checkCompatible(o)
	return e.n.Cmp(o.n)
}

func (e Element) Add(o Element) Element {
	e.checkCompatible(o)
	n := new(big.Int).Add(e.n, o.n)
	return Element{n: n.Mod(n, e.field.Order()), field: e.field}
}

func (e Element) Sub(o Element) Element {
	e.checkCompatible(o)
	n := new(big.Int).Sub(e.n, o.n)
	return Element{n: n.Mod(n, e.field.Order()), field: e.field}
}

func (e Element) Mul(o Element) Element {
	e.checkCompatible(o)
	n := new(big.Int).Mul(e.n, o.n)
	return Element{n: n.Mod(n, e.field.Order()), field: e.field}
}

func (e Element) Neg() Element {
	if e.IsZero() {
		return e
	}
	return Element{n: new(big.Int).Sub(e.field.Order(), e.n), field: e.field}
}

// MultiplicativeInverse returns x⁻¹ such that x·x⁻¹ = 1. Panics on zero;
// gadget code that may face a zero value uses InverseOrZero or reports an
// execution error instead.
func (e Element) MultiplicativeInverse() Element {
	if e.IsZero() {
		panic("zero does not have a multiplicative inverse")
	}
	// Fermat's little theorem: x^(p-2) = x^-1 mod p.
	exp := new(big.Int).Sub(e.field.Order(), big.NewInt(2))
	return Element{n: new(big.Int).Exp(e.n, exp, e.field.Order()), field: e.field}
}

// InverseOrZero maps zero to itself rather than panicking.
func (e Element) InverseOrZero() Element {
	if e.IsZero() {
		return e
	}
	return e.MultiplicativeInverse()
}

// Exp returns e raised to the given power.
func (e Element) Exp(power Element) Element {
	e.checkCompatible(power)
	return Element{n: new(big.Int).Exp(e.n, power.n, e.field.Order()), field: e.field}
}

// ExpBig returns e raised to an arbitrary non-negative integer power.
func (e Element) ExpBig(power *big.Int) Element {
	return Element{n: new(big.Int).Exp(e.n, power, e.field.Order()), field: e.field}
}

// Div returns e / o. Panics if o is zero.
func (e Element) Div(o Element) Element {
	return e.Mul(o.MultiplicativeInverse())
}

// IntegerDivision divides the representatives over the integers.
func (e Element) IntegerDivision(o Element) Element {
	e.checkCompatible(o)
	if o.IsZero() {
		panic("integer division by zero")
	}
	return Element{n: new(big.Int).Quo(e.n, o.n), field: e.field}
}

// IntegerModulus reduces the representatives over the integers.
func (e Element) IntegerModulus(o Element) Element {
	e.checkCompatible(o)
	if o.IsZero() {
		panic("integer modulus by zero")
	}
	return Element{n: new(big.Int).Rem(e.n, o.n), field: e.field}
}

// GCD of the representatives over the integers.
func (e Element) GCD(o Element) Element {
	e.checkCompatible(o)
	return Element{n: new(big.Int).GCD(nil, nil, e.n, o.n), field: e.field}
}

// Shl shifts the representative left and reduces modulo the order.
func (e Element) Shl(k uint) Element {
	n := new(big.Int).Lsh(e.n, k)
	return Element{n: n.Mod(n, e.field.Order()), field: e.field}
}

// BitLen returns the number of bits needed to encode this particular
// element.
func (e Element) BitLen() int { return e.n.BitLen() }

// Bit returns the i'th least significant bit of the canonical
// representative; bits outside the range are zero.
func (e Element) Bit(i int) bool { return e.n.Bit(i) == 1 }

func (e Element) String() string { return e.n.String() }

func (e Element) checkCompatible(o Element) {
	if e.field == nil || o.field == nil {
		panic("element is missing its field, use the field constructors")
	}
	if !sameField(e.field, o.field) {
		panic(fmt.Sprintf("mixing elements of different fields: %s vs %s",
			e.field.Order(), o.field.Order()))
	}
}
