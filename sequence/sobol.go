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
	"github.com/pkg/errors"

	"github.com/gosens-project/gosens/data"
)

// SobolMaxDims is the number of dimensions the Sobol generator
// supports, limited by its table of primitive polynomials and
// initial direction numbers (Press et al. 2007, ch. 7.8).
const SobolMaxDims = 6

const sobolMaxBits = 30

// Primitive polynomial degrees, encoded interior polynomial bits
// and initial direction numbers from Press et al. 2007. The tail
// of the direction table is filled in by the recurrence below.
var (
	sobolMDeg = [SobolMaxDims]uint32{1, 2, 3, 3, 4, 4}
	sobolIP   = [SobolMaxDims]uint32{0, 1, 1, 2, 1, 4}
	sobolIV   = [sobolMaxBits * SobolMaxDims]uint32{
		1, 1, 1, 1, 1, 1, 3, 1, 3, 3, 1, 1, 5, 7, 7, 3, 3, 5, 15, 11, 5, 15, 13, 9,
	}
)

// Sobol generates points of the Sobol sequence in the unit
// hypercube via the Antonov-Saleev Gray-code recurrence. The
// sequence is fixed: every generator value produces the same
// points, regardless of any seed the caller derives it from.
// Its first point is the origin.
type Sobol struct {
	iv [sobolMaxBits * SobolMaxDims]uint32
}

// NewSobol returns an instance of the Sobol generator with
// direction numbers expanded to full precision.
func NewSobol() *Sobol {
	s := &Sobol{iv: sobolIV}

	for k := uint32(0); k < SobolMaxDims; k++ {
		deg := sobolMDeg[k]
		for j := uint32(0); j < deg; j++ {
			s.iv[SobolMaxDims*j+k] <<= sobolMaxBits - j - 1
		}

		for j := deg; j < sobolMaxBits; j++ {
			ipp := sobolIP[k]
			i := s.iv[SobolMaxDims*(j-deg)+k]
			i ^= i >> deg

			for l := deg - 1; l >= 1; l-- {
				if ipp&1 == 1 {
					i ^= s.iv[SobolMaxDims*(j-l)+k]
				}
				ipp >>= 1
			}

			s.iv[SobolMaxDims*j+k] = i
		}
	}

	return s
}

// Sample returns the first count points of the Sobol sequence in
// dims dimensions. It returns error if dims exceeds SobolMaxDims
// or count exceeds the 2^30 points the direction table covers.
func (s *Sobol) Sample(count, dims int) (data.Matrix, error) {
	if count < 1 {
		return nil, errors.Errorf("count should be at least 1, got %d", count)
	}
	if count > 1<<sobolMaxBits {
		return nil, errors.Errorf("count %d exceeds the maximum of %d points", count, 1<<sobolMaxBits)
	}
	if dims < 1 || dims > SobolMaxDims {
		return nil, errors.Errorf("dims should be between 1 and %d, got %d", SobolMaxDims, dims)
	}

	fac := 1.0 / float64(int64(1)<<sobolMaxBits)

	var ix [SobolMaxDims]uint32
	points := make([]data.Vector, count)
	for n := 0; n < count; n++ {
		point := make([]float64, dims)
		for k := 0; k < dims; k++ {
			point[k] = float64(ix[k]) * fac
		}
		points[n] = data.NewVector(point)

		if n+1 == count {
			break
		}

		// Gray-code step: flip along the direction of the lowest
		// zero bit of n.
		j := 0
		for ; j < sobolMaxBits; j++ {
			if n&(1<<j) == 0 {
				break
			}
		}
		for k := 0; k < dims; k++ {
			ix[k] ^= s.iv[SobolMaxDims*j+k]
		}
	}

	return data.NewMatrix(points)
}
