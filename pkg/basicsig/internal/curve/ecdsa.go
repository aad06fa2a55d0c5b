package curve

import (
	"errors"
	"math/big"
	"runtime"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

var (
	errZeroSigningKey = errors.New("curve: signing scalar is zero")
	errRRange         = errors.New("curve: r is not in [1, N-1]")
	errSRange         = errors.New("curve: s is not in [1, N-1]")
	errCompactLength  = errors.New("curve: unexpected signature length")
)

// Sign produces an ECDSA signature of hash with the secret scalar k.
//
// hash is used directly as the ECDSA message representative: values longer
// than the field size are truncated to their leftmost bytes and shorter ones
// are read as a big-endian integer. The nonce is derived deterministically
// (RFC 6979) and s is normalised to the lower half of the order.
func (g *Group) Sign(k *Scalar, hash []byte) (r, s *big.Int, err error) {
	if k == nil || k.v.IsZero() {
		return nil, nil, errZeroSigningKey
	}
	priv := secp256k1.NewPrivateKey(&k.v)
	defer priv.Zero()
	runtime.KeepAlive(k)

	// <recovery code><32-byte R><32-byte S>
	compact := ecdsa.SignCompact(priv, hash, false)
	fs := g.curve.FieldSize()
	if len(compact) != 1+2*fs {
		return nil, nil, errCompactLength
	}
	r = new(big.Int).SetBytes(compact[1 : 1+fs])
	s = new(big.Int).SetBytes(compact[1+fs:])
	return r, s, nil
}

// Verify checks an ECDSA signature (r, s) of hash under pub. It returns an
// error when r or s cannot be a signature component at all (zero, negative
// or not below the group order) and false when the signature is well formed
// but invalid.
func (g *Group) Verify(r, s *big.Int, hash []byte, pub *secp256k1.PublicKey) (bool, error) {
	rv, ok := g.component(r)
	if !ok {
		return false, errRRange
	}
	sv, ok := g.component(s)
	if !ok {
		return false, errSRange
	}
	return ecdsa.NewSignature(&rv, &sv).Verify(hash, pub), nil
}

func (g *Group) component(v *big.Int) (secp256k1.ModNScalar, bool) {
	var out secp256k1.ModNScalar
	if v == nil || v.Sign() <= 0 {
		return out, false
	}
	b := v.Bytes()
	if len(b) > g.curve.FieldSize() {
		return out, false
	}
	if overflow := out.SetByteSlice(b); overflow {
		return out, false
	}
	return out, true
}
