package core

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is an immutable rows x cols matrix of float64 values.
// Every accessor checks its indices and reports ErrIndexOutOfRange instead of panicking.
type Matrix struct {
	m *mat.Dense
}

// NewMatrix creates a zero matrix with the given dimensions
func NewMatrix(rows, cols int) (Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return Matrix{}, fmt.Errorf("%w: dimensions must be greater than zero, got %dx%d", ErrMatrixShape, rows, cols)
	}
	return Matrix{m: mat.NewDense(rows, cols, nil)}, nil
}

// NewMatrixFromRows creates a matrix from row slices, which must all have the same length
func NewMatrixFromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Matrix{}, fmt.Errorf("%w: cannot build a matrix from empty rows", ErrMatrixShape)
	}

	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrMatrixShape, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return Matrix{m: mat.NewDense(len(rows), cols, data)}, nil
}

// matrixFromColumns builds a 3x3 matrix whose columns are the given vectors
func matrixFromColumns(c0, c1, c2 Vec3) Matrix {
	return Matrix{m: mat.NewDense(3, 3, []float64{
		c0.X, c1.X, c2.X,
		c0.Y, c1.Y, c2.Y,
		c0.Z, c1.Z, c2.Z,
	})}
}

// Dims returns the number of rows and columns
func (m Matrix) Dims() (rows, cols int) {
	if m.m == nil {
		return 0, 0
	}
	return m.m.Dims()
}

// At returns the element at (row, col)
func (m Matrix) At(row, col int) (float64, error) {
	rows, cols := m.Dims()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d matrix", ErrIndexOutOfRange, row, col, rows, cols)
	}
	return m.m.At(row, col), nil
}

// Column returns column col of a matrix with three rows as a vector
func (m Matrix) Column(col int) (Vec3, error) {
	rows, cols := m.Dims()
	if rows != 3 {
		return Vec3{}, fmt.Errorf("%w: column vector needs 3 rows, matrix has %d", ErrMatrixShape, rows)
	}
	if col < 0 || col >= cols {
		return Vec3{}, fmt.Errorf("%w: column %d in %dx%d matrix", ErrIndexOutOfRange, col, rows, cols)
	}
	return NewVec3(m.m.At(0, col), m.m.At(1, col), m.m.At(2, col)), nil
}

// Mul returns the matrix product m * other
func (m Matrix) Mul(other Matrix) (Matrix, error) {
	r1, c1 := m.Dims()
	r2, c2 := other.Dims()
	if r1 == 0 || r2 == 0 || c1 != r2 {
		return Matrix{}, fmt.Errorf("%w: cannot multiply %dx%d by %dx%d", ErrMatrixShape, r1, c1, r2, c2)
	}

	var out mat.Dense
	out.Mul(m.m, other.m)
	return Matrix{m: &out}, nil
}

// Scale returns the matrix with every element multiplied by f
func (m Matrix) Scale(f float64) Matrix {
	if m.m == nil {
		return m
	}
	var out mat.Dense
	out.Scale(f, m.m)
	return Matrix{m: &out}
}

// Det returns the determinant of a square matrix
func (m Matrix) Det() (float64, error) {
	rows, cols := m.Dims()
	if rows == 0 || rows != cols {
		return 0, fmt.Errorf("%w: determinant of %dx%d matrix", ErrMatrixShape, rows, cols)
	}
	return mat.Det(m.m), nil
}

// Equal reports whether both matrices have the same shape and identical elements
func (m Matrix) Equal(other Matrix) bool {
	if m.m == nil || other.m == nil {
		return m.m == nil && other.m == nil
	}
	return mat.Equal(m.m, other.m)
}

// String formats the matrix one row per line
func (m Matrix) String() string {
	if m.m == nil {
		return "[]"
	}
	return fmt.Sprintf("%v", mat.Formatted(m.m))
}
