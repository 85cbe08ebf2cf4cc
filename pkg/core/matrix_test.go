package core

import (
	"errors"
	"testing"
)

func TestNewMatrix_Shape(t *testing.T) {
	m, err := NewMatrix(2, 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if r, c := m.Dims(); r != 2 || c != 3 {
		t.Errorf("Expected 2x3, got %dx%d", r, c)
	}
	if v, _ := m.At(1, 2); v != 0 {
		t.Errorf("Expected zero element, got %v", v)
	}

	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 1}} {
		if _, err := NewMatrix(dims[0], dims[1]); !errors.Is(err, ErrMatrixShape) {
			t.Errorf("NewMatrix(%d, %d): expected ErrMatrixShape, got %v", dims[0], dims[1], err)
		}
	}
}

func TestNewMatrixFromRows_Invalid(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
	}{
		{"nil", nil},
		{"empty row", [][]float64{{}}},
		{"ragged", [][]float64{{1, 2}, {3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMatrixFromRows(tt.rows); !errors.Is(err, ErrMatrixShape) {
				t.Errorf("Expected ErrMatrixShape, got %v", err)
			}
		})
	}
}

func TestMatrix_AtOutOfRange(t *testing.T) {
	m, _ := NewMatrixFromRows([][]float64{{1, 2}, {3, 4}})

	tests := []struct {
		name     string
		row, col int
	}{
		{"row too large", 2, 0},
		{"col too large", 0, 2},
		{"negative row", -1, 0},
		{"negative col", 0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.At(tt.row, tt.col); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
			}
		})
	}

	if v, err := m.At(1, 0); err != nil || v != 3 {
		t.Errorf("Expected 3, got %v (err %v)", v, err)
	}
}

func TestMatrix_Mul(t *testing.T) {
	a, _ := NewMatrixFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
	b, _ := NewMatrixFromRows([][]float64{{7, 8}, {9, 10}, {11, 12}})
	expected, _ := NewMatrixFromRows([][]float64{{58, 64}, {139, 154}})

	got, err := a.Mul(b)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !got.Equal(expected) {
		t.Errorf("Expected\n%v\ngot\n%v", expected, got)
	}

	if _, err := a.Mul(a); !errors.Is(err, ErrMatrixShape) {
		t.Errorf("Expected ErrMatrixShape for 2x3 * 2x3, got %v", err)
	}
}

func TestMatrix_ScaleDoesNotMutate(t *testing.T) {
	m, _ := NewMatrixFromRows([][]float64{{1, -2}, {0.5, 4}})
	scaled := m.Scale(2)
	expected, _ := NewMatrixFromRows([][]float64{{2, -4}, {1, 8}})

	if !scaled.Equal(expected) {
		t.Errorf("Expected\n%v\ngot\n%v", expected, scaled)
	}
	if v, _ := m.At(0, 1); v != -2 {
		t.Errorf("Scale modified the original matrix: %v", m)
	}
}

func TestMatrix_Column(t *testing.T) {
	m, _ := NewMatrixFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})

	col, err := m.Column(1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if col != NewVec3(2, 4, 6) {
		t.Errorf("Expected (2,4,6), got %v", col)
	}

	if _, err := m.Column(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}

	flat, _ := NewMatrix(2, 2)
	if _, err := flat.Column(0); !errors.Is(err, ErrMatrixShape) {
		t.Errorf("Expected ErrMatrixShape for 2-row matrix, got %v", err)
	}
}

func TestMatrix_Det(t *testing.T) {
	m, _ := NewMatrixFromRows([][]float64{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}})
	det, err := m.Det()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if det < 24-1e-9 || det > 24+1e-9 {
		t.Errorf("Expected determinant 24, got %v", det)
	}

	rect, _ := NewMatrix(2, 3)
	if _, err := rect.Det(); !errors.Is(err, ErrMatrixShape) {
		t.Errorf("Expected ErrMatrixShape, got %v", err)
	}
}

func TestMatrix_ZeroValue(t *testing.T) {
	var m Matrix
	if r, c := m.Dims(); r != 0 || c != 0 {
		t.Errorf("Expected 0x0, got %dx%d", r, c)
	}
	if _, err := m.At(0, 0); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
	if !m.Equal(Matrix{}) {
		t.Error("Zero matrices should be equal")
	}
}
