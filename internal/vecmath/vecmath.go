// Package vecmath provides the scalar and slice primitives the network
// engine is built on: the tanh activation pair and a small float64
// vector/matrix toolkit.
package vecmath

import (
	"fmt"
	"math"
)

// Tanh is the hyperbolic tangent activation. Outputs lie in (-1, 1).
func Tanh(x float64) float64 {
	return math.Tanh(x)
}

// TanhPrime is the derivative of Tanh, evaluated at the pre-activation
// value x (not at tanh(x)):
//
//	tanh'(x) = 1 - tanh(x)^2
func TanhPrime(x float64) float64 {
	t := math.Tanh(x)
	return 1 - t*t
}

// Dot returns the inner product of xs and ys. Both slices must have the
// same length; mismatched lengths indicate a wiring bug upstream, so Dot
// panics rather than guessing.
func Dot(xs, ys []float64) float64 {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("vecmath: Dot length mismatch: %d vs %d", len(xs), len(ys)))
	}
	var sum float64
	for i, x := range xs {
		sum += x * ys[i]
	}
	return sum
}

// Matrix is a dense row-major matrix: a slice of equally sized rows.
type Matrix [][]float64

// NewMatrix builds a rows-by-cols matrix, filling entries in row-major
// order with successive values from gen.
func NewMatrix(rows, cols int, gen func() float64) Matrix {
	m := make(Matrix, rows)
	for r := range m {
		row := make([]float64, cols)
		for c := range row {
			row[c] = gen()
		}
		m[r] = row
	}
	return m
}

// Transpose returns a new matrix with rows and columns swapped.
func (m Matrix) Transpose() Matrix {
	if len(m) == 0 {
		return nil
	}
	t := make(Matrix, len(m[0]))
	for c := range t {
		row := make([]float64, len(m))
		for r := range m {
			row[r] = m[r][c]
		}
		t[c] = row
	}
	return t
}

// Clone returns a deep copy that shares no backing storage with m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for r, row := range m {
		out[r] = append([]float64(nil), row...)
	}
	return out
}
