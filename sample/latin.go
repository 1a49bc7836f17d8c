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
	"golang.org/x/exp/rand"

	"github.com/gosens-project/gosens/data"
)

// Latin generates model inputs by Latin hypercube sampling.
// For every parameter the unit interval is partitioned into n
// equal-width strata, one uniform draw is taken inside each
// stratum, and the draws are shuffled independently per
// parameter. Each marginal is therefore perfectly stratified
// while the pairing across parameters is randomized.
type Latin struct {
	rnd *rand.Rand
}

// NewLatin returns an instance of the Latin sampler seeded from
// the wall clock, so that repeated calls produce different
// designs.
func NewLatin() *Latin {
	return NewLatinSeeded(timeSeed())
}

// NewLatinSeeded returns an instance of the Latin sampler with a
// private generator determined by seed. Two samplers with the
// same seed produce identical designs.
func NewLatinSeeded(seed uint64) *Latin {
	return NewLatinFrom(rand.New(rand.NewSource(seed)))
}

// NewLatinFrom returns an instance of the Latin sampler drawing
// from the provided generator. The sampler does not serialize
// access to it; callers sharing a generator across goroutines
// must do so themselves.
func NewLatinFrom(rnd *rand.Rand) *Latin {
	return &Latin{rnd: rnd}
}

// Sample generates n design points for problem p and returns
// them as an n x p.NumVars() matrix, each row lying in the
// problem's parameter space. It returns error if n < 1.
func (l *Latin) Sample(p *data.Problem, n int) (data.Matrix, error) {
	if n < 1 {
		return nil, errors.Errorf("number of samples should be at least 1, got %d", n)
	}

	numVars := p.NumVars()
	width := 1.0 / float64(n)

	unit := data.NewConstantMatrix(n, numVars, 0)
	column := make([]float64, n)
	for i := 0; i < numVars; i++ {
		for j := 0; j < n; j++ {
			column[j] = (float64(j) + l.rnd.Float64()) * width
		}
		l.rnd.Shuffle(n, func(a, b int) {
			column[a], column[b] = column[b], column[a]
		})

		for j := 0; j < n; j++ {
			unit[j][i] = column[j]
		}
	}

	return scaleUnit(p, unit)
}
