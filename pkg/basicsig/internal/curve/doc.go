// Package curve is the boundary between the signature schemes and the
// elliptic-curve primitive they delegate to.
//
// It supplies the curve parameters the codecs need (field size, point size,
// object identifiers) and wraps the group operations of
// github.com/decred/dcrd/dcrec/secp256k1/v4: point decoding and encoding,
// scalar parsing, and the ECDSA sign and verify algorithms. No field or point
// arithmetic is implemented here.
//
// # Memory Management
//
// Scalars hold secret values and must be explicitly freed:
//
//	k, err := g.NewScalarFromBytes(raw)
//	if err != nil {
//	    return err
//	}
//	defer k.Free()
//
// A finalizer is set as a safety net, but explicit cleanup is required to
// bound the lifetime of the secret.
package curve
