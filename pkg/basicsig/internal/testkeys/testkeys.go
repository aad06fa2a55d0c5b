// Package testkeys generates secp256k1 key pairs for tests.
//
// WARNING: keys are produced by a general purpose library with no hygiene
// around the returned scalar. Do not use in production.
package testkeys

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
)

// Keypair is a secp256k1 secret scalar and its uncompressed public point.
type Keypair struct {
	Scalar []byte   // 32-byte big-endian
	Public [65]byte // 0x04 || X || Y
	priv   *btcec.PrivateKey
}

// BTCEC returns the key as a btcec private key for cross-checking against an
// independent implementation.
func (k *Keypair) BTCEC() *btcec.PrivateKey {
	return k.priv
}

// New generates a random key pair. The scalar is wiped when the test ends.
func New(tb testing.TB) *Keypair {
	tb.Helper()
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		tb.Fatalf("generate key: %v", err)
	}
	return fromPrivateKey(tb, priv)
}

// FromScalar builds the key pair of a fixed scalar, which must lie in
// [1, N-1] and be at most 32 bytes.
func FromScalar(tb testing.TB, scalar []byte) *Keypair {
	tb.Helper()
	if len(scalar) == 0 || len(scalar) > 32 {
		tb.Fatalf("scalar must be 1 to 32 bytes, got %d", len(scalar))
	}
	priv, _ := btcec.PrivKeyFromBytes(scalar)
	return fromPrivateKey(tb, priv)
}

func fromPrivateKey(tb testing.TB, priv *btcec.PrivateKey) *Keypair {
	k := &Keypair{priv: priv}
	k.Scalar = priv.Serialize()
	copy(k.Public[:], priv.PubKey().SerializeUncompressed())
	tb.Cleanup(func() {
		clear(k.Scalar)
		priv.Zero()
	})
	return k
}
