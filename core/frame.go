package core

import "math"

const frac1Sqrt2 = 1 / math.Sqrt2

// NEDToENURotation is the fixed rotation taking North-East-Down axes to
// East-North-Up axes. It swaps north and east and flips down to up.
var NEDToENURotation = Quaternion{W: 0, X: frac1Sqrt2, Y: frac1Sqrt2, Z: 0}

// ENUToNEDRotation undoes NEDToENURotation.
var ENUToNEDRotation = NEDToENURotation.Conj()

// Converter maps an orientation from one reference frame to another.
type Converter func(Quaternion) Quaternion

// NEDToENU converts a normalized NED orientation into the same orientation
// expressed in ENU, using the hand-written product. The result is normalized
// whenever the input is.
func NEDToENU(q Quaternion) Quaternion {
	return NEDToENUManual(q)
}

// ENUToNED is the inverse of NEDToENU.
func ENUToNED(q Quaternion) Quaternion {
	return Mul(ENUToNEDRotation, q)
}

// NEDToENUManual evaluates NEDToENURotation ⊗ q with Mul.
func NEDToENUManual(q Quaternion) Quaternion {
	return Mul(NEDToENURotation, q)
}

// NEDToENUGonum evaluates NEDToENURotation ⊗ q with gonum's quaternion type.
func NEDToENUGonum(q Quaternion) Quaternion {
	return gonumMul(NEDToENURotation, q)
}

// NEDToENUMathGL evaluates NEDToENURotation ⊗ q with mathgl's mgl64.Quat.
func NEDToENUMathGL(q Quaternion) Quaternion {
	return mathglMul(NEDToENURotation, q)
}
