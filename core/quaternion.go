package core

import "math"

// Quaternion is a rotation in Hamilton convention, scalar first.
// Values are never modified in place; every operation returns a new one.
type Quaternion struct {
	W, X, Y, Z float64
}

// Identity is the quaternion of the zero rotation.
var Identity = Quaternion{W: 1}

// Mul returns the Hamilton product a ⊗ b. The product is not commutative.
func Mul(a, b Quaternion) Quaternion {
	return Quaternion{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// Norm returns the Euclidean norm of the four components.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Conj returns the conjugate (w, -x, -y, -z). For a unit quaternion this is
// also its inverse.
func (q Quaternion) Conj() Quaternion {
	return Quaternion{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Components returns q as a [w, x, y, z] array.
func (q Quaternion) Components() [4]float64 {
	return [4]float64{q.W, q.X, q.Y, q.Z}
}
