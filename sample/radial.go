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

package sample

import (
	"github.com/pkg/errors"

	"github.com/gosens-project/gosens/data"
	"github.com/gosens-project/gosens/sequence"
)

// numDiscarded is the number of leading low-discrepancy points
// dropped before the baselines are taken. Early points of such
// sequences exhibit correlation artifacts; discarding four
// removes them (Campolongo et al. 2011).
const numDiscarded = 4

// Radial generates model inputs for a radial one-at-a-time
// design. For each of n replicates it emits a block of D+1 rows:
// a baseline point followed by D rows, each differing from the
// baseline in exactly one coordinate. Evaluating a model on the
// design takes n*(D+1) runs and supports elementary-effect based
// total-sensitivity estimation.
type Radial struct {
	// Discard is the number of leading sequence points dropped
	// before the baseline stream begins.
	Discard int

	// Sequence builds the low-discrepancy generator for a given
	// seed. Both the baseline and the perturbation stream are
	// sliced from a single point set of this generator, so the
	// two streams never overlap.
	Sequence func(seed uint64) sequence.Generator
}

// NewRadial returns an instance of the Radial sampler backed by
// the Owen-scrambled Halton generator.
func NewRadial() *Radial {
	return &Radial{
		Discard: numDiscarded,
		Sequence: func(seed uint64) sequence.Generator {
			return sequence.NewHalton(seed)
		},
	}
}

// Sample generates the radial design of n replicates for problem
// p and returns it as an n*(D+1) x D matrix, with each
// replicate's rows contiguous and the baseline first. The same
// seed always yields the same design, provided the configured
// sequence generator honors it. It returns error if n < 1 or the
// generator cannot serve the problem's dimensionality.
//
// A perturbation coordinate that scales to exactly zero leaves
// its row equal to the baseline; the estimator counts such rows
// as zero elementary effects.
func (r *Radial) Sample(p *data.Problem, n int, seed uint64) (data.Matrix, error) {
	if n < 1 {
		return nil, errors.Errorf("number of sample sets should be at least 1, got %d", n)
	}

	numVars := p.NumVars()

	// R = n + Discard baseline candidates plus n perturbation
	// vectors, all sliced out of one stream.
	total := r.Discard + 2*n
	points, err := r.Sequence(seed).Sample(total, numVars)
	if err != nil {
		return nil, errors.Wrap(err, "generating the low-discrepancy stream")
	}

	base, err := scaleUnit(p, points.Slice(r.Discard, r.Discard+n))
	if err != nil {
		return nil, err
	}
	perturbations, err := scaleUnit(p, points.Slice(r.Discard+n, total))
	if err != nil {
		return nil, err
	}

	group := numVars + 1
	rows := make([]data.Vector, n*group)
	for i := 0; i < n; i++ {
		start := i * group
		for g := 0; g < group; g++ {
			rows[start+g] = base[i].Copy()
		}

		for j := 0; j < numVars; j++ {
			if perturbations[i][j] != 0.0 {
				rows[start+1+j][j] = perturbations[i][j]
			}
		}
	}

	return data.NewMatrix(rows)
}
