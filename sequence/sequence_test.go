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

package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertUnitCube(t *testing.T, g Generator, count, dims int) {
	m, err := g.Sample(count, dims)
	if err != nil {
		t.Fatalf("Error during sequence generation: %v", err)
	}

	assert.Equal(t, count, m.Rows())
	assert.Equal(t, dims, m.Cols())
	for _, row := range m {
		for _, x := range row {
			assert.True(t, x >= 0 && x < 1, "coordinates should lie in [0, 1)")
		}
	}
}

func TestHalton(t *testing.T) {
	assertUnitCube(t, NewHalton(1), 100, 3)
}

func TestHalton_Deterministic(t *testing.T) {
	m1, err := NewHalton(42).Sample(50, 4)
	if err != nil {
		t.Fatalf("Error during sequence generation: %v", err)
	}
	m2, err := NewHalton(42).Sample(50, 4)
	if err != nil {
		t.Fatalf("Error during sequence generation: %v", err)
	}

	assert.Equal(t, m1, m2, "equal seeds should produce equal point sets")

	m3, err := NewHalton(43).Sample(50, 4)
	if err != nil {
		t.Fatalf("Error during sequence generation: %v", err)
	}
	assert.NotEqual(t, m1, m3, "different seeds should produce different point sets")
}

func TestSobol_Prefix(t *testing.T) {
	g := NewSobol()
	short, err := g.Sample(10, 2)
	if err != nil {
		t.Fatalf("Error during sequence generation: %v", err)
	}
	long, err := g.Sample(25, 2)
	if err != nil {
		t.Fatalf("Error during sequence generation: %v", err)
	}

	assert.Equal(t, short, long.Slice(0, 10), "a longer request should extend the shorter one")
}

func TestHalton_Malformed(t *testing.T) {
	_, err := NewHalton(1).Sample(0, 2)
	assert.Error(t, err)

	_, err = NewHalton(1).Sample(10, 0)
	assert.Error(t, err)
}

func TestSobol(t *testing.T) {
	assertUnitCube(t, NewSobol(), 128, SobolMaxDims)
}

func TestSobol_FirstPoints(t *testing.T) {
	m, err := NewSobol().Sample(4, 2)
	if err != nil {
		t.Fatalf("Error during sequence generation: %v", err)
	}

	// The sequence opens with the origin and then the cube center.
	assert.Equal(t, 0.0, m[0][0])
	assert.Equal(t, 0.0, m[0][1])
	assert.Equal(t, 0.5, m[1][0])
	assert.Equal(t, 0.5, m[1][1])
}

func TestSobol_Deterministic(t *testing.T) {
	m1, err := NewSobol().Sample(64, 3)
	if err != nil {
		t.Fatalf("Error during sequence generation: %v", err)
	}
	m2, err := NewSobol().Sample(64, 3)
	if err != nil {
		t.Fatalf("Error during sequence generation: %v", err)
	}

	assert.Equal(t, m1, m2)
}

func TestSobol_Stratified(t *testing.T) {
	// 2^k consecutive Sobol points occupy 2^k distinct dyadic
	// intervals in every dimension.
	n := 16
	m, err := NewSobol().Sample(n, 2)
	if err != nil {
		t.Fatalf("Error during sequence generation: %v", err)
	}

	for d := 0; d < 2; d++ {
		occupied := make(map[int]int)
		for i := 0; i < n; i++ {
			occupied[int(m[i][d]*float64(n))]++
		}
		for bucket, c := range occupied {
			assert.Equal(t, 1, c, "bucket %d should hold one point", bucket)
		}
	}
}

func TestSobol_Malformed(t *testing.T) {
	_, err := NewSobol().Sample(10, SobolMaxDims+1)
	assert.Error(t, err)

	_, err = NewSobol().Sample(0, 1)
	assert.Error(t, err)
}
