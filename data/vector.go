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
)

// Vector wraps a slice of float64 elements.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new Vector with the same elements as v.
func (v Vector) Copy() Vector {
	newVec := make([]float64, len(v))
	copy(newVec, v)

	return NewVector(newVec)
}

// Sub subtracts vectors v and other element-wise.
// It panics if the vectors differ in length.
func (v Vector) Sub(other Vector) Vector {
	if len(v) != len(other) {
		panic("vectors should be of the same length")
	}

	diff := make([]float64, len(v))
	for i, c := range v {
		diff[i] = c - other[i]
	}

	return NewVector(diff)
}

// SumOfSquares returns the sum of squared elements of v.
func (v Vector) SumOfSquares() float64 {
	sum := 0.0
	for _, c := range v {
		sum += c * c
	}

	return sum
}

// IsFinite returns a bool indicating whether all
// elements of v are finite (neither NaN nor an infinity).
func (v Vector) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}

	return true
}
