package hash

import "github.com/0xPolygonZero/r1cs/gadget"

// MiyaguchiPreneel is the additive variant of the Miyaguchi-Preneel
// construction:
//
//	compress(x, y) = E_x(y) + x + y
type MiyaguchiPreneel struct {
	cipher BlockCipher
}

// NewMiyaguchiPreneel creates a Miyaguchi-Preneel compression function
// from the given block cipher.
func NewMiyaguchiPreneel(cipher BlockCipher) *MiyaguchiPreneel {
	return &MiyaguchiPreneel{cipher: cipher}
}

func (mp *MiyaguchiPreneel) Compress(b *gadget.GadgetBuilder, x, y gadget.Expression) gadget.Expression {
	return mp.cipher.Encrypt(b, x, y).Add(x).Add(y)
}
