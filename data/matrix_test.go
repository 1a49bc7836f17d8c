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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/gosens-project/gosens/internal"
)

func TestMatrix(t *testing.T) {
	m, err := NewMatrix([]Vector{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		t.Fatalf("Error during matrix construction: %v", err)
	}

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 5.0, m[1][1])

	_, err = NewMatrix([]Vector{{1, 2}, {3}})
	assert.ErrorIs(t, err, internal.MalformedMatrix)
}

func TestMatrix_Empty(t *testing.T) {
	var m Matrix
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
}

func TestMatrix_DimsMatch(t *testing.T) {
	m1 := NewConstantMatrix(2, 3, 1)
	m2 := NewConstantMatrix(2, 3, 2)
	m3 := NewConstantMatrix(3, 3, 2)

	assert.True(t, m1.DimsMatch(m2))
	assert.False(t, m1.DimsMatch(m3))
}

func TestMatrix_GetCol(t *testing.T) {
	m, _ := NewMatrix([]Vector{{1, 2}, {3, 4}, {5, 6}})

	col, err := m.GetCol(1)
	if err != nil {
		t.Fatalf("Error getting column: %v", err)
	}
	assert.Equal(t, Vector{2, 4, 6}, col)

	_, err = m.GetCol(2)
	assert.ErrorIs(t, err, internal.MalformedMatrix)
}

func TestMatrix_Copy(t *testing.T) {
	m, _ := NewMatrix([]Vector{{1, 2}, {3, 4}})
	c := m.Copy()
	c[0][0] = 42

	assert.Equal(t, 1.0, m[0][0], "copy should not share storage")
}

func TestMatrix_Slice(t *testing.T) {
	m, _ := NewMatrix([]Vector{{1, 2}, {3, 4}, {5, 6}})
	s := m.Slice(1, 3)

	assert.Equal(t, 2, s.Rows())
	assert.Equal(t, Vector{3, 4}, s[0])

	s[0][0] = 42
	assert.Equal(t, 3.0, m[1][0], "slice should not share storage")
}

func TestMatrix_Dense(t *testing.T) {
	m, _ := NewMatrix([]Vector{{1, 2}, {3, 4}})
	d := m.ToDense()

	rows, cols := d.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 3.0, d.At(1, 0))

	back := FromDense(d)
	assert.Equal(t, m, back)

	back2 := FromDense(mat.NewDense(1, 2, []float64{7, 8}))
	assert.Equal(t, Vector{7, 8}, back2[0])
}

func TestVector(t *testing.T) {
	v := NewVector([]float64{3, -1, 2})

	assert.Equal(t, Vector{2, -3, 1}, v.Sub(Vector{1, 2, 1}))
	assert.Equal(t, 14.0, v.SumOfSquares())
	assert.True(t, v.IsFinite())
	assert.False(t, Vector{math.NaN()}.IsFinite())
	assert.False(t, Vector{math.Inf(1)}.IsFinite())

	c := v.Copy()
	c[0] = 0
	assert.Equal(t, 3.0, v[0], "copy should not share storage")

	assert.Equal(t, Vector{5, 5}, NewConstantVector(2, 5))
}
