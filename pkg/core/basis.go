package core

import (
	"fmt"
	"math"
)

// Basis is a right-handed orthonormal frame.
// Column 0 (W) is the normalized view direction, columns 1 (U) and 2 (V) complete the frame.
type Basis struct {
	cols [3]Vec3
}

// BuildBasis returns an orthonormal basis whose first axis is aligned with view.
// The result depends only on view, so the same input always yields the same frame.
func BuildBasis(view Vec3) (Basis, error) {
	axis0, err := view.Normalize()
	if err != nil {
		return Basis{}, fmt.Errorf("%w: %w", ErrDegenerateDirection, err)
	}

	// Helper axis must not be near-parallel to axis0 or the projection collapses
	helper := NewVec3(1, 0, 0)
	if math.Abs(axis0.X) >= 0.9 {
		helper = NewVec3(0, 1, 0)
	}

	// Gram-Schmidt
	axis1, err := helper.Subtract(axis0.Multiply(axis0.Dot(helper))).Normalize()
	if err != nil {
		return Basis{}, fmt.Errorf("%w: %w", ErrDegenerateDirection, err)
	}
	axis2 := axis0.Cross(axis1)

	return Basis{cols: [3]Vec3{axis0, axis1, axis2}}, nil
}

// W returns column 0, the backward axis pointing along the view direction
func (b Basis) W() Vec3 { return b.cols[0] }

// U returns column 1, the horizontal screen axis
func (b Basis) U() Vec3 { return b.cols[1] }

// V returns column 2, the vertical screen axis
func (b Basis) V() Vec3 { return b.cols[2] }

// Column returns basis column i
func (b Basis) Column(i int) (Vec3, error) {
	if i < 0 || i >= len(b.cols) {
		return Vec3{}, fmt.Errorf("%w: basis column %d", ErrIndexOutOfRange, i)
	}
	return b.cols[i], nil
}

// Matrix returns the basis as a 3x3 matrix with the axes as columns
func (b Basis) Matrix() Matrix {
	return matrixFromColumns(b.cols[0], b.cols[1], b.cols[2])
}
