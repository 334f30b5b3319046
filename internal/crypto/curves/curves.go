// Package curves wraps the secp256k1 group operations the VRF needs.
//
// Points and scalars are immutable values: every operation returns a fresh
// result and never modifies its receiver or arguments, so values can be
// shared freely between goroutines.
package curves

import (
	"errors"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ErrInvalidScalar is returned when a secret scalar is not in [1, n-1].
var ErrInvalidScalar = errors.New("invalid scalar")

// ScalarLen is the fixed width of a serialized scalar.
const ScalarLen = 32

var (
	order     = new(big.Int).Set(secp256k1.Params().N)
	generator = ScalarBaseMult(NewScalarFromUint(1))
)

// Order returns a copy of the group order n.
func Order() *big.Int {
	return new(big.Int).Set(order)
}

// Point is an element of the secp256k1 group in affine form, or the identity.
// The zero value is not valid; use Identity, Generator or DecodePoint.
type Point struct {
	x, y     secp256k1.FieldVal
	infinity bool
}

// Identity returns the point at infinity.
func Identity() *Point {
	return &Point{infinity: true}
}

// Generator returns the base point G.
func Generator() *Point {
	p := *generator
	return &p
}

func fromJacobian(j *secp256k1.JacobianPoint) *Point {
	var x, y, z secp256k1.FieldVal
	x.Set(&j.X).Normalize()
	y.Set(&j.Y).Normalize()
	z.Set(&j.Z).Normalize()
	if (x.IsZero() && y.IsZero()) || z.IsZero() {
		return Identity()
	}
	a := *j
	a.ToAffine()
	return &Point{x: a.X, y: a.Y}
}

func (p *Point) jacobian() secp256k1.JacobianPoint {
	if p.infinity {
		return secp256k1.JacobianPoint{}
	}
	var one secp256k1.FieldVal
	one.SetInt(1)
	return secp256k1.MakeJacobianPoint(&p.x, &p.y, &one)
}

// IsIdentity reports whether p is the point at infinity.
func (p *Point) IsIdentity() bool {
	return p.infinity
}

// IsOnCurve reports whether p is a finite point with 0 < x < p, 0 < y < p
// and y² = x³ + 7.
func (p *Point) IsOnCurve() bool {
	if p.infinity || p.x.IsZero() || p.y.IsZero() {
		return false
	}
	var lhs, rhs secp256k1.FieldVal
	lhs.SquareVal(&p.y).Normalize()
	rhs.SquareVal(&p.x).Mul(&p.x).AddInt(7).Normalize()
	return lhs.Equals(&rhs)
}

// Equal reports whether p and q are the same group element.
func (p *Point) Equal(q *Point) bool {
	if p.infinity || q.infinity {
		return p.infinity == q.infinity
	}
	return p.x.Equals(&q.x) && p.y.Equals(&q.y)
}

// X returns the affine x coordinate, or nil for the identity.
func (p *Point) X() *big.Int {
	if p.infinity {
		return nil
	}
	b := p.x.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// Y returns the affine y coordinate, or nil for the identity.
func (p *Point) Y() *big.Int {
	if p.infinity {
		return nil
	}
	b := p.y.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// Add returns p + q.
func (p *Point) Add(q *Point) *Point {
	a, b := p.jacobian(), q.jacobian()
	var r secp256k1.JacobianPoint
	secp256k1.AddNonConst(&a, &b, &r)
	return fromJacobian(&r)
}

// Neg returns -p.
func (p *Point) Neg() *Point {
	if p.infinity {
		return Identity()
	}
	r := &Point{x: p.x}
	r.y.NegateVal(&p.y, 1).Normalize()
	return r
}

// Sub returns p - q.
func (p *Point) Sub(q *Point) *Point {
	return p.Add(q.Neg())
}

// Mul returns k·p.
func (p *Point) Mul(k *Scalar) *Point {
	if p.infinity {
		return Identity()
	}
	a := p.jacobian()
	var r secp256k1.JacobianPoint
	secp256k1.ScalarMultNonConst(&k.n, &a, &r)
	return fromJacobian(&r)
}

// ScalarBaseMult returns k·G.
func ScalarBaseMult(k *Scalar) *Point {
	var r secp256k1.JacobianPoint
	secp256k1.ScalarBaseMultNonConst(&k.n, &r)
	return fromJacobian(&r)
}

// Scalar is an integer modulo the group order n.
type Scalar struct {
	n secp256k1.ModNScalar
}

// NewScalarFromUint returns v mod n.
func NewScalarFromUint(v uint32) *Scalar {
	s := new(Scalar)
	s.n.SetInt(v)
	return s
}

// NewScalarFromBig returns v mod n. v must be non-negative.
func NewScalarFromBig(v *big.Int) *Scalar {
	r := new(big.Int).Mod(v, order)
	var b [ScalarLen]byte
	r.FillBytes(b[:])
	s := new(Scalar)
	s.n.SetBytes(&b)
	return s
}

// ParseScalar decodes a 32-byte big-endian secret scalar, rejecting values
// outside [1, n-1].
func ParseScalar(b []byte) (*Scalar, error) {
	if len(b) != ScalarLen {
		return nil, ErrInvalidScalar
	}
	s := new(Scalar)
	if overflow := s.n.SetByteSlice(b); overflow || s.n.IsZero() {
		return nil, ErrInvalidScalar
	}
	return s, nil
}

// ParseCanonicalScalar decodes a 32-byte big-endian value in [0, n-1].
// Unlike ParseScalar it accepts zero; it is meant for proof responses.
func ParseCanonicalScalar(b []byte) (*Scalar, error) {
	if len(b) != ScalarLen {
		return nil, ErrInvalidScalar
	}
	s := new(Scalar)
	if overflow := s.n.SetByteSlice(b); overflow {
		return nil, ErrInvalidScalar
	}
	return s, nil
}

// RandomScalar draws a uniform scalar in [1, n-1] from rand by rejection.
func RandomScalar(rand io.Reader) (*Scalar, error) {
	var b [ScalarLen]byte
	for {
		if _, err := io.ReadFull(rand, b[:]); err != nil {
			return nil, err
		}
		s := new(Scalar)
		if overflow := s.n.SetByteSlice(b[:]); overflow || s.n.IsZero() {
			continue
		}
		return s, nil
	}
}

// Bytes returns the 32-byte big-endian encoding of s.
func (s *Scalar) Bytes() [ScalarLen]byte {
	return s.n.Bytes()
}

// BigInt returns s as a big integer in [0, n-1].
func (s *Scalar) BigInt() *big.Int {
	b := s.n.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// IsZero reports whether s is zero.
func (s *Scalar) IsZero() bool {
	return s.n.IsZero()
}

// Equal reports whether s and t are equal.
func (s *Scalar) Equal(t *Scalar) bool {
	return s.n.Equals(&t.n)
}

// Add returns s + t mod n.
func (s *Scalar) Add(t *Scalar) *Scalar {
	r := new(Scalar)
	r.n.Add2(&s.n, &t.n)
	return r
}

// Mul returns s·t mod n.
func (s *Scalar) Mul(t *Scalar) *Scalar {
	r := new(Scalar)
	r.n.Mul2(&s.n, &t.n)
	return r
}
