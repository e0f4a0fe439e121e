// Copyright 2016 The Adjacent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Vec is a triple of expression nodes, a convenience over 3-space; in
// purely 2D contexts Z is the shared Zero constant. Arithmetic is
// componentwise.
type Vec struct {
	X, Y, Z *Node
}

// NewVec2 builds a Vec with Z pinned to the shared zero constant.
func NewVec2(x, y *Node) Vec {
	return Vec{X: x, Y: y, Z: Zero}
}

// Add returns the componentwise sum a + b.
func (a Vec) Add(b Vec) Vec {
	return Vec{AddN(a.X, b.X), AddN(a.Y, b.Y), AddN(a.Z, b.Z)}
}

// Sub returns the componentwise difference a - b.
func (a Vec) Sub(b Vec) Vec {
	return Vec{SubN(a.X, b.X), SubN(a.Y, b.Y), SubN(a.Z, b.Z)}
}

// Neg returns the componentwise negation of a.
func (a Vec) Neg() Vec {
	return Vec{Neg(a.X), Neg(a.Y), Neg(a.Z)}
}

// Scale returns a scaled componentwise by the scalar expression s.
func (a Vec) Scale(s *Node) Vec {
	return Vec{MulN(a.X, s), MulN(a.Y, s), MulN(a.Z, s)}
}

// ScaleDiv returns a divided componentwise by the scalar expression s.
func (a Vec) ScaleDiv(s *Node) Vec {
	return Vec{DivN(a.X, s), DivN(a.Y, s), DivN(a.Z, s)}
}

// Dot returns the scalar dot product a·b.
func Dot(a, b Vec) *Node {
	return AddN(AddN(MulN(a.X, b.X), MulN(a.Y, b.Y)), MulN(a.Z, b.Z))
}

// Cross returns the vector cross product a×b.
func Cross(a, b Vec) Vec {
	return Vec{
		X: SubN(MulN(a.Y, b.Z), MulN(a.Z, b.Y)),
		Y: SubN(MulN(a.Z, b.X), MulN(a.X, b.Z)),
		Z: SubN(MulN(a.X, b.Y), MulN(a.Y, b.X)),
	}
}

// Magnitude returns sqrt(x^2+y^2+z^2).
func (a Vec) Magnitude() *Node {
	return Sqrt(AddN(AddN(Sqr(a.X), Sqr(a.Y)), Sqr(a.Z)))
}

// XY returns the [X, Y] component pair, used where a caller wants only the
// 2D equations out of a vector (PointOn and PointsCoincident contribute
// x/y equations, never z, in 2D sketches).
func (a Vec) XY() (*Node, *Node) {
	return a.X, a.Y
}
