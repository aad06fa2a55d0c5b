package curve

import (
	"errors"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var (
	// ErrUnsupportedCurve is returned when a group cannot be constructed.
	ErrUnsupportedCurve = errors.New("curve: unsupported curve")

	// ErrPointFormat is returned when a point is not in uncompressed form.
	ErrPointFormat = errors.New("curve: point is not uncompressed")
)

// Group is a constructed curve group. It is immutable and safe for
// concurrent use; constructing one is cheap.
type Group struct {
	curve Curve
}

// NewGroup constructs the group of c. It fails when the primitive library
// does not provide c or reports parameters of an unexpected size.
func NewGroup(c Curve) (*Group, error) {
	if c != Secp256k1 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCurve, c)
	}
	params := secp256k1.S256().Params()
	if params == nil || params.N == nil || params.BitSize != 8*c.FieldSize() {
		return nil, fmt.Errorf("%w: %s parameters unavailable", ErrUnsupportedCurve, c)
	}
	return &Group{curve: c}, nil
}

// Curve returns the curve of the group.
func (g *Group) Curve() Curve {
	return g.curve
}

// ParsePoint decodes a SEC 1 point in any form the primitive supports
// (compressed or uncompressed) and checks that it is on the curve.
func (g *Group) ParsePoint(b []byte) (*secp256k1.PublicKey, error) {
	p, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("curve: %w", err)
	}
	return p, nil
}

// ParseUncompressedPoint decodes a point that must be in uncompressed form:
// exactly PointSize bytes starting with the 0x04 marker, on the curve.
func (g *Group) ParseUncompressedPoint(b []byte) (*secp256k1.PublicKey, error) {
	if len(b) != g.curve.PointSize() {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrPointFormat, g.curve.PointSize(), len(b))
	}
	if b[0] != UncompressedPrefix {
		return nil, fmt.Errorf("%w: prefix %d", ErrPointFormat, b[0])
	}
	return g.ParsePoint(b)
}

// EncodeUncompressed serializes p as 0x04 || X || Y.
func (g *Group) EncodeUncompressed(p *secp256k1.PublicKey) []byte {
	return p.SerializeUncompressed()
}

// PublicPoint returns s*G.
func (g *Group) PublicPoint(s *Scalar) *secp256k1.PublicKey {
	priv := secp256k1.NewPrivateKey(&s.v)
	defer priv.Zero()
	return priv.PubKey()
}

// Matches reports whether s*G equals p.
func (g *Group) Matches(s *Scalar, p *secp256k1.PublicKey) bool {
	return g.PublicPoint(s).IsEqual(p)
}
