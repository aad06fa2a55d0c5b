// Package ecdsasecp256k1 implements ECDSA over secp256k1 with fixed-size
// byte encodings.
//
// Public keys are 65-byte uncompressed points and travel as DER
// SubjectPublicKeyInfo; only the canonical encoding is accepted. Signatures
// are 64 bytes, r || s, each half a zero-padded big-endian integer. Secret
// keys live in a zeroizing container built from a scalar and its public key.
//
// The curve arithmetic and the ECDSA algorithm itself are delegated to
// github.com/decred/dcrd/dcrec/secp256k1/v4.
//
// # Usage
//
//	sk, err := ecdsasecp256k1.SecretKeyFromComponents(scalar, pk)
//	if err != nil {
//	    return err
//	}
//	defer sk.Zeroize()
//
//	sig, err := ecdsasecp256k1.Sign(digest, sk)
//	if err != nil {
//	    return err
//	}
//	if err := ecdsasecp256k1.Verify(sig, digest, pk); err != nil {
//	    return err
//	}
//
// # Messages
//
// The message passed to Sign and Verify is the ECDSA message representative
// itself; no hash is applied. Callers hash first and pass the digest.
//
// # Errors
//
// Every error is a *basicsig.CryptoError tagged with basicsig.EcdsaSecp256k1.
// Match kinds with errors.Is:
//
//	if errors.Is(err, basicsig.ErrSignatureVerification) {
//	    // reject
//	}
//
// # Concurrency
//
// All functions are safe for concurrent use. A SecretKeyBytes may be shared
// by concurrent Sign calls as long as nobody zeroizes it meanwhile.
package ecdsasecp256k1
