// Package field provides prime field arithmetic on arbitrary-precision
// integers, parameterized by a Field describing the order.
package field

import (
	"fmt"
	"math/big"

	fr_bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	fr_bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Field describes a prime order field. Callers may provide their own
// implementations; the library only ever calls Order.
type Field interface {
	// Order returns the (prime) order of the field. Implementations must
	// return a value the caller is free to read but not mutate.
	Order() *big.Int
}

// Bn128 is the scalar field of the BN128 (alt_bn128 / BN254) curve.
type Bn128 struct{}

func (Bn128) Order() *big.Int { return fr_bn254.Modulus() }

// Bls12_381 is the scalar field of the BLS12-381 curve.
type Bls12_381 struct{}

func (Bls12_381) Order() *big.Int { return fr_bls12381.Modulus() }

type primeField struct {
	order *big.Int
}

func (f *primeField) Order() *big.Int { return f.order }

// PrimeField returns a Field with the given order. The order must be an
// odd prime of at least 5; primality itself is not verified.
func PrimeField(order *big.Int) Field {
	if order.Cmp(big.NewInt(5)) < 0 {
		panic(fmt.Sprintf("field order must be at least 5, got %s", order))
	}
	return &primeField{order: new(big.Int).Set(order)}
}

// BitLen returns the number of bits needed to encode every element of f,
// that is ⌈log₂ order⌉.
func BitLen(f Field) int {
	max := new(big.Int).Sub(f.Order(), big.NewInt(1))
	return max.BitLen()
}

// sameField reports whether two fields have the same order. Concrete
// field types may differ as long as the orders agree.
func sameField(a, b Field) bool {
	if a == b {
		return true
	}
	return a.Order().Cmp(b.Order()) == 0
}
