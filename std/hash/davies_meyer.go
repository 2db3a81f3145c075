package hash

import "github.com/0xPolygonZero/r1cs/gadget"

// DaviesMeyer is the additive variant of the Davies-Meyer construction,
// which turns a block cipher into a one-way compression function:
//
//	compress(state, block) = E_block(state) + state
type DaviesMeyer struct {
	cipher BlockCipher
}

// NewDaviesMeyer creates a Davies-Meyer compression function from the
// given block cipher.
func NewDaviesMeyer(cipher BlockCipher) *DaviesMeyer {
	return &DaviesMeyer{cipher: cipher}
}

func (dm *DaviesMeyer) Compress(b *gadget.GadgetBuilder, x, y gadget.Expression) gadget.Expression {
	return dm.cipher.Encrypt(b, y, x).Add(x)
}
