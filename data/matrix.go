/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package data

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/gosens-project/gosens/internal"
)

// Matrix wraps a slice of Vector elements. It represents a row-major
// order matrix.
//
// The j-th element from the i-th vector of the matrix can be obtained
// as m[i][j].
type Matrix []Vector

// NewMatrix accepts a slice of Vector elements and
// returns a new Matrix instance.
// It returns error if not all the vectors have the same number of elements.
func NewMatrix(vectors []Vector) (Matrix, error) {
	l := -1
	newVectors := make([]Vector, len(vectors))

	if len(vectors) > 0 {
		l = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != l {
			return nil, errors.Wrap(internal.MalformedMatrix, "all vectors should be of the same length")
		}
		newVectors[i] = NewVector(v)
	}

	return Matrix(newVectors), nil
}

// NewConstantMatrix returns a new Matrix instance
// with all elements set to constant c.
func NewConstantMatrix(rows, cols int, c float64) Matrix {
	m := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		m[i] = NewConstantVector(cols, c)
	}

	return m
}

// FromDense converts a gonum dense matrix into
// a new Matrix instance with copied elements.
func FromDense(d *mat.Dense) Matrix {
	rows, cols := d.Dims()

	m := make([]Vector, rows)
	for i := 0; i < rows; i++ {
		row := make([]float64, cols)
		mat.Row(row, i, d)
		m[i] = NewVector(row)
	}

	return Matrix(m)
}

// ToDense converts matrix m into a new gonum
// dense matrix with copied elements.
func (m Matrix) ToDense() *mat.Dense {
	flat := make([]float64, m.Rows()*m.Cols())
	for i, v := range m {
		copy(flat[i*m.Cols():], v)
	}

	return mat.NewDense(m.Rows(), m.Cols(), flat)
}

// Rows returns the number of rows of matrix m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of matrix m.
func (m Matrix) Cols() int {
	if len(m) != 0 {
		return len(m[0])
	}

	return 0
}

// DimsMatch returns a bool indicating whether matrices
// m and other have the same dimensions.
func (m Matrix) DimsMatch(other Matrix) bool {
	return m.Rows() == other.Rows() && m.Cols() == other.Cols()
}

// GetCol returns i-th column of matrix m as a vector.
// It returns error if i >= the number of m's columns.
func (m Matrix) GetCol(i int) (Vector, error) {
	if i >= m.Cols() {
		return nil, errors.Wrap(internal.MalformedMatrix, "column index exceeds matrix dimensions")
	}

	column := make([]float64, m.Rows())
	for j := 0; j < m.Rows(); j++ {
		column[j] = m[j][i]
	}

	return NewVector(column), nil
}

// Copy creates a new Matrix with the same elements as m.
func (m Matrix) Copy() Matrix {
	newVectors := make([]Vector, m.Rows())
	for i, v := range m {
		newVectors[i] = v.Copy()
	}

	return Matrix(newVectors)
}

// Slice returns a new Matrix sharing no storage with m,
// containing rows [from, to) of m.
func (m Matrix) Slice(from, to int) Matrix {
	newVectors := make([]Vector, to-from)
	for i := from; i < to; i++ {
		newVectors[i-from] = m[i].Copy()
	}

	return Matrix(newVectors)
}
