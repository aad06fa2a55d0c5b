// Package der builds and parses the two DER structures the signature schemes
// exchange with callers: the PKIX SubjectPublicKeyInfo of a public key and
// the RFC 5915 ECPrivateKey held inside secret key containers.
//
// Parsing is strict DER (cryptobyte rejects non-minimal lengths) and never
// tolerates trailing data. Canonical-form decisions that depend on the curve,
// such as rejecting compressed points, are left to the callers.
package der
