// Package basicsig holds the pieces shared by the basic signature schemes of
// this module: the algorithm identifiers, the error taxonomy every operation
// reports through, and the zeroizing container used for secret key material.
//
// The schemes themselves live in sub-packages. Today that is
// ecdsasecp256k1, which implements ECDSA over secp256k1 with strict
// canonical key encodings and a fixed-width signature format.
//
// # Error Handling
//
// Every failure is returned as a *CryptoError. Its Kind can be matched with
// errors.Is against the exported ErrorKind values:
//
//	pk, err := ecdsasecp256k1.PublicKeyFromDER(der)
//	if errors.Is(err, basicsig.ErrMalformedPublicKey) {
//	    // reject the input
//	}
//
// Errors never carry secret bytes. Public keys and signatures may appear in
// an error (hex encoded) because they are public.
//
// # Secret Material
//
// SecretBytes wipes its backing array when Zeroize is called and, as a
// safety net, when the garbage collector finalizes it. Callers should always
// pair construction with a deferred Zeroize:
//
//	sk, err := ecdsasecp256k1.SecretKeyFromComponents(scalar, pk)
//	if err != nil {
//	    return err
//	}
//	defer sk.Zeroize()
//
// Neither SecretBytes nor the key types built on it have a printable form;
// fmt and log/slog render them as "[redacted]".
package basicsig
