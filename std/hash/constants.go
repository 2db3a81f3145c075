package hash

import (
	"io"

	"golang.org/x/crypto/chacha20"

	"github.com/0xPolygonZero/r1cs/field"
)

// constantsStream returns a deterministic byte stream backed by the
// ChaCha20 keystream under an all-zero key and nonce. It seeds the
// default MiMC round constants and Merkle-Damgard initial value, so the
// derived parameters are reproducible across runs.
func constantsStream() io.Reader {
	key := make([]byte, chacha20.KeySize)
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		panic(err)
	}
	return &keystreamReader{cipher: c}
}

type keystreamReader struct {
	cipher *chacha20.Cipher
}

func (r *keystreamReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// randomElements samples n field elements from the deterministic stream.
func randomElements(f field.Field, n int) []field.Element {
	stream := constantsStream()
	out := make([]field.Element, n)
	for i := range out {
		e, err := field.RandomElement(f, stream)
		if err != nil {
			panic(err)
		}
		out[i] = e
	}
	return out
}
