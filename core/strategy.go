package core

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

// Strategy names accepted by Lookup.
const (
	StrategyManual = "manual"
	StrategyGonum  = "gonum"
	StrategyMathGL = "mathgl"
)

// DefaultStrategy is the strategy behind NEDToENU.
const DefaultStrategy = StrategyManual

// Strategy is one implementation of the Hamilton product, and through it of
// the frame conversions.
type Strategy struct {
	Name     string
	Aliases  []string
	Multiply func(a, b Quaternion) Quaternion
}

// NEDToENU converts q from NED to ENU using the strategy's product.
func (s Strategy) NEDToENU(q Quaternion) Quaternion {
	return s.Multiply(NEDToENURotation, q)
}

// ENUToNED converts q from ENU to NED using the strategy's product.
func (s Strategy) ENUToNED(q Quaternion) Quaternion {
	return s.Multiply(ENUToNEDRotation, q)
}

// Converter returns the conversion for the requested direction.
func (s Strategy) Converter(inverse bool) Converter {
	if inverse {
		return s.ENUToNED
	}
	return s.NEDToENU
}

var strategies = []Strategy{
	{Name: StrategyGonum, Aliases: []string{"nalgebra"}, Multiply: gonumMul},
	{Name: StrategyManual, Multiply: Mul},
	{Name: StrategyMathGL, Aliases: []string{"threejs"}, Multiply: mathglMul},
}

var strategyIndex = buildIndex(strategies)

func buildIndex(list []Strategy) map[string]Strategy {
	idx := make(map[string]Strategy, len(list)*2)
	for _, s := range list {
		idx[s.Name] = s
		for _, alias := range s.Aliases {
			idx[alias] = s
		}
	}
	return idx
}

// Lookup resolves a strategy by name or alias. Matching is case-sensitive.
func Lookup(name string) (Strategy, bool) {
	s, ok := strategyIndex[name]
	return s, ok
}

// Strategies returns every registered strategy sorted by name.
func Strategies() []Strategy {
	out := make([]Strategy, len(strategies))
	copy(out, strategies)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns every accepted name and alias, sorted.
func Names() []string {
	names := make([]string, 0, len(strategyIndex))
	for name := range strategyIndex {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func gonumMul(a, b Quaternion) Quaternion {
	p := quat.Mul(toGonum(a), toGonum(b))
	return Quaternion{W: p.Real, X: p.Imag, Y: p.Jmag, Z: p.Kmag}
}

func toGonum(q Quaternion) quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func mathglMul(a, b Quaternion) Quaternion {
	p := toMathGL(a).Mul(toMathGL(b))
	return Quaternion{W: p.W, X: p.V[0], Y: p.V[1], Z: p.V[2]}
}

func toMathGL(q Quaternion) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}
