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
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/samplemv"

	"github.com/gosens-project/gosens/data"
)

// Halton generates Owen-scrambled Halton points in the unit
// hypercube. The scrambling permutations are derived from the
// seed, so generators with equal seeds produce identical point
// sets and generators with different seeds produce different
// ones. There is no dimension limit.
type Halton struct {
	seed uint64
}

// NewHalton returns an instance of the Halton generator.
// It accepts the seed for the Owen scrambling.
func NewHalton(seed uint64) *Halton {
	return &Halton{seed: seed}
}

// Sample returns the first count points of the scrambled Halton
// sequence in dims dimensions. It returns error if count or dims
// is not positive.
func (h *Halton) Sample(count, dims int) (data.Matrix, error) {
	if count < 1 {
		return nil, errors.Errorf("count should be at least 1, got %d", count)
	}
	if dims < 1 {
		return nil, errors.Errorf("dims should be at least 1, got %d", dims)
	}

	batch := mat.NewDense(count, dims, nil)
	sampler := samplemv.Halton{
		Kind: samplemv.Owen,
		Q:    distmv.NewUnitUniform(dims, nil),
		Src:  rand.NewSource(h.seed),
	}
	sampler.Sample(batch)

	return data.FromDense(batch), nil
}
