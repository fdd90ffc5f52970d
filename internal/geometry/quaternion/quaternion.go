// Package quaternion implements an immutable quaternion value type over
// float64 and its algebra: the additive group, the Hamilton product,
// conjugation, norms, inversion and division.
//
// A Quaternion is a plain [4]float64 holding (w, x, y, z), where w is the
// scalar part and x, y, z are the coefficients of the imaginary basis
// symbols i, j and k. Every operation returns a new value and never
// modifies its operands, so values can be copied and shared freely between
// goroutines.
//
// Construction never validates its inputs. NaN and infinite components are
// accepted and propagate through arithmetic following IEEE-754. The only
// fallible operations are those that divide by the norm (Inverse, Div,
// LeftDiv, Normalize); they return ErrSingular for a zero quaternion
// instead of producing infinities.
package quaternion

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"

	"hypercomplex/internal/geometry/vector"
)

// DefaultEpsilon is the tolerance used for internal self-consistency checks
// such as IsZero. Callers comparing derived values with ApproxEqual pass
// their own tolerance.
const DefaultEpsilon = 1e-13

// ErrSingular is returned when an operation would divide by the norm of a
// quaternion whose norm is zero.
var ErrSingular = errors.New("quaternion: singular value has no inverse")

// Quaternion is w + xi + yj + zk stored as [w, x, y, z].
type Quaternion [4]float64

// New creates a quaternion from its scalar and imaginary components.
func New(w, x, y, z float64) Quaternion {
	return Quaternion{w, x, y, z}
}

// FromParts creates a quaternion from a scalar part and a vector part.
func FromParts(w float64, v vector.Vec3) Quaternion {
	return Quaternion{w, v.X, v.Y, v.Z}
}

// FromNumber converts a gonum quaternion.
func FromNumber(n quat.Number) Quaternion {
	return Quaternion{n.Real, n.Imag, n.Jmag, n.Kmag}
}

// Identity returns the multiplicative identity (1, 0, 0, 0).
func Identity() Quaternion { return Quaternion{1, 0, 0, 0} }

// Zero returns the additive identity (0, 0, 0, 0).
func Zero() Quaternion { return Quaternion{} }

// W returns the scalar component.
func (q Quaternion) W() float64 { return q[0] }

// X returns the i component.
func (q Quaternion) X() float64 { return q[1] }

// Y returns the j component.
func (q Quaternion) Y() float64 { return q[2] }

// Z returns the k component.
func (q Quaternion) Z() float64 { return q[3] }

// Components returns a copy of the four components in w, x, y, z order.
func (q Quaternion) Components() [4]float64 { return q }

// Scalar returns the real part. It is the same as W.
func (q Quaternion) Scalar() float64 { return q[0] }

// Vector returns the imaginary part as a 3D vector.
func (q Quaternion) Vector() vector.Vec3 { return vector.NewVec3(q[1], q[2], q[3]) }

// Number converts q to a gonum quaternion.
func (q Quaternion) Number() quat.Number {
	return quat.Number{Real: q[0], Imag: q[1], Jmag: q[2], Kmag: q[3]}
}

// Add returns the component-wise sum q + o.
func (q Quaternion) Add(o Quaternion) Quaternion {
	var r Quaternion
	for i := range q {
		r[i] = q[i] + o[i]
	}
	return r
}

// Sub returns the component-wise difference q - o.
func (q Quaternion) Sub(o Quaternion) Quaternion {
	var r Quaternion
	for i := range q {
		r[i] = q[i] - o[i]
	}
	return r
}

// Neg returns -q.
func (q Quaternion) Neg() Quaternion {
	return q.Scale(-1)
}

// Mul returns the Hamilton product q·o. The product is not commutative:
// q.Mul(o) and o.Mul(q) differ whenever the imaginary parts of q and o are
// not parallel.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	aw, ax, ay, az := q[0], q[1], q[2], q[3]
	bw, bx, by, bz := o[0], o[1], o[2], o[3]
	return Quaternion{
		aw*bw - ax*bx - ay*by - az*bz,
		aw*bx + ax*bw + ay*bz - az*by,
		aw*by - ax*bz + ay*bw + az*bx,
		aw*bz + ax*by - ay*bx + az*bw,
	}
}

// Scale multiplies every component by s.
func (q Quaternion) Scale(s float64) Quaternion {
	var r Quaternion
	for i := range q {
		r[i] = q[i] * s
	}
	return r
}

// DivScalar divides every component by s. Division by zero follows
// IEEE-754.
func (q Quaternion) DivScalar(s float64) Quaternion {
	var r Quaternion
	for i := range q {
		r[i] = q[i] / s
	}
	return r
}

// Conjugate returns w - xi - yj - zk.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{q[0], -q[1], -q[2], -q[3]}
}

// Dot returns the four-dimensional inner product of q and o.
func (q Quaternion) Dot(o Quaternion) float64 {
	var s float64
	for i := range q {
		s += q[i] * o[i]
	}
	return s
}

// NormSquared returns the sum of the squares of the components.
func (q Quaternion) NormSquared() float64 { return q.Dot(q) }

// Magnitude returns the Euclidean norm of q. The components are scaled
// before squaring, so the result neither overflows nor underflows while the
// norm itself is representable. It is 0 only for the zero quaternion.
func (q Quaternion) Magnitude() float64 {
	n := q.Number()
	m := quat.Abs(n)
	if m == 0 && quat.IsNaN(n) {
		return math.NaN()
	}
	return m
}

// Inverse returns the quaternion p with q·p = p·q = 1, the conjugate
// divided by the squared norm. The conjugate is divided by the magnitude
// twice so that values whose squared norm is not representable still
// invert. It returns ErrSingular when the magnitude is zero.
func (q Quaternion) Inverse() (Quaternion, error) {
	m := q.Magnitude()
	if m == 0 {
		return Quaternion{}, errors.Wrapf(ErrSingular, "inverse of %g", [4]float64(q))
	}
	return q.Conjugate().DivScalar(m).DivScalar(m), nil
}

// Div returns the right quotient q·o⁻¹.
//
// Because multiplication does not commute this differs from LeftDiv in
// general. q.Div(o).Mul(o) recovers q; o.Mul(q.Div(o)) usually does not.
func (q Quaternion) Div(o Quaternion) (Quaternion, error) {
	inv, err := o.Inverse()
	if err != nil {
		return Quaternion{}, errors.Wrap(err, "right division")
	}
	return q.Mul(inv), nil
}

// LeftDiv returns the left quotient o⁻¹·q.
func (q Quaternion) LeftDiv(o Quaternion) (Quaternion, error) {
	inv, err := o.Inverse()
	if err != nil {
		return Quaternion{}, errors.Wrap(err, "left division")
	}
	return inv.Mul(q), nil
}

// Normalize returns the unit quaternion pointing the same way as q.
func (q Quaternion) Normalize() (Quaternion, error) {
	m := q.Magnitude()
	if m == 0 {
		return Quaternion{}, errors.Wrapf(ErrSingular, "normalize %g", [4]float64(q))
	}
	return q.DivScalar(m), nil
}

// ApproxEqual reports whether every component of q differs from the
// matching component of o by strictly less than eps.
func (q Quaternion) ApproxEqual(o Quaternion, eps float64) bool {
	for i := range q {
		if !(math.Abs(q[i]-o[i]) < eps) {
			return false
		}
	}
	return true
}

// IsZero reports whether q is the additive identity within DefaultEpsilon.
func (q Quaternion) IsZero() bool {
	return q.ApproxEqual(Zero(), DefaultEpsilon)
}

// IsIdentity reports whether q is the multiplicative identity within
// DefaultEpsilon.
func (q Quaternion) IsIdentity() bool {
	return q.ApproxEqual(Identity(), DefaultEpsilon)
}

// IsFinite reports whether no component is NaN or infinite.
func (q Quaternion) IsFinite() bool {
	for _, v := range q {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
