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

// Package analyze converts model outputs evaluated on a sampling
// design into quantitative sensitivity indices with confidence
// bounds.
package analyze

import (
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gosens-project/gosens/data"
)

// ErrResultShape signals a model output vector whose length is
// inconsistent with the number of sample sets it claims to hold:
// a radial design of r sets over D parameters produces exactly
// r*(D+1) outputs.
var ErrResultShape = errors.New("number of result set groups must match number of parameters + 1")

// ErrConfidenceLevel signals a confidence level outside of the
// open interval (0, 1).
var ErrConfidenceLevel = errors.New("confidence level must be between 0 and 1")

// Result holds the sensitivity indices of one Analyze call:
// one total-effect index and one confidence half-width per
// parameter, in the parameter order of the problem. A Result is
// never modified after it is returned.
type Result struct {
	Names  []string
	ST     data.Vector
	STConf data.Vector
}

// Jansen estimates total-effect sensitivity indices from model
// outputs evaluated on a radial one-at-a-time design, using the
// Jansen estimator over per-parameter elementary effects
// (Jansen 1999; Campolongo et al. 2011). Confidence half-widths
// come from bootstrap resampling of the replicates.
type Jansen struct {
	// NumResamples is the number of bootstrap trials for the
	// confidence bounds.
	NumResamples int

	// ConfLevel is the two-sided confidence level of the bounds,
	// in (0, 1).
	ConfLevel float64

	rnd *rand.Rand
}

// NewJansen returns an instance of the Jansen estimator with
// 1000 bootstrap resamples at the 0.95 confidence level, seeded
// from the wall clock.
func NewJansen() *Jansen {
	return NewJansenSeeded(uint64(time.Now().UnixNano()))
}

// NewJansenSeeded returns an instance of the Jansen estimator
// whose bootstrap draws are determined by seed. Two estimators
// with the same seed produce identical confidence bounds for the
// same inputs.
func NewJansenSeeded(seed uint64) *Jansen {
	return NewJansenFrom(rand.New(rand.NewSource(seed)))
}

// NewJansenFrom returns an instance of the Jansen estimator
// drawing bootstrap indices from the provided generator. The
// estimator does not serialize access to it; callers sharing a
// generator across goroutines must do so themselves.
func NewJansenFrom(rnd *rand.Rand) *Jansen {
	return &Jansen{
		NumResamples: 1000,
		ConfLevel:    0.95,
		rnd:          rnd,
	}
}

// Analyze computes total-effect indices for problem p from the
// flat output vector y of a radial design with sampleSets
// replicates, in the row order produced by the radial sampler.
// It returns error if len(y) != sampleSets*(D+1) or the
// configured confidence level is outside (0, 1).
//
// When the baseline outputs have zero variance (for instance
// with a single sample set, or a model constant over the
// baselines) the indices divide by zero and are reported as Inf
// or NaN rather than an error, matching the estimator's plain
// arithmetic.
func (j *Jansen) Analyze(p *data.Problem, y data.Vector, sampleSets int) (*Result, error) {
	numVars := p.NumVars()
	group := numVars + 1

	if sampleSets < 1 {
		return nil, errors.Wrapf(ErrResultShape, "got %d sample sets", sampleSets)
	}
	if len(y) != sampleSets*group {
		return nil, errors.Wrapf(ErrResultShape,
			"got %d outputs for %d sets of %d parameters", len(y), sampleSets, numVars)
	}
	if j.ConfLevel <= 0 || j.ConfLevel >= 1 {
		return nil, errors.Wrapf(ErrConfidenceLevel, "got %g", j.ConfLevel)
	}

	// Element 0 of every block is that replicate's baseline.
	yBase := make(data.Vector, sampleSets)
	for s := 0; s < sampleSets; s++ {
		yBase[s] = y[s*group]
	}
	baseVariance := stat.Variance(yBase, nil)

	effects := make([]data.Vector, numVars)
	st := make([]float64, numVars)
	for i := 0; i < numVars; i++ {
		perturbed := make(data.Vector, sampleSets)
		for s := 0; s < sampleSets; s++ {
			perturbed[s] = y[s*group+1+i]
		}

		effects[i] = yBase.Sub(perturbed)
		st[i] = jansenEstimator(effects[i]) / baseVariance
	}

	return &Result{
		Names:  append([]string(nil), p.Names...),
		ST:     data.NewVector(st),
		STConf: j.confidence(effects, baseVariance, sampleSets),
	}, nil
}

// jansenEstimator computes the Jansen variance estimate of a
// vector of elementary effects over r replicates,
// sum(v^2) / (2r).
func jansenEstimator(v data.Vector) float64 {
	return v.SumOfSquares() / (2.0 * float64(len(v)))
}

// confidence bootstraps the Jansen-over-variance statistic:
// replicate indices are drawn with replacement, one index set
// shared by all parameters per trial, and the half-width is the
// ddof=1 standard deviation of the trials scaled by the
// two-sided normal quantile of the confidence level.
func (j *Jansen) confidence(effects []data.Vector, baseVariance float64, sampleSets int) data.Vector {
	numVars := len(effects)
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.5 + j.ConfLevel/2.0)

	trials := make([]data.Vector, numVars)
	for i := range trials {
		trials[i] = make(data.Vector, j.NumResamples)
	}

	indices := make([]int, sampleSets)
	for t := 0; t < j.NumResamples; t++ {
		for s := range indices {
			indices[s] = j.rnd.Intn(sampleSets)
		}

		for i := 0; i < numVars; i++ {
			sum := 0.0
			for _, s := range indices {
				e := effects[i][s]
				sum += e * e
			}
			trials[i][t] = sum / (2.0 * float64(sampleSets)) / baseVariance
		}
	}

	conf := make([]float64, numVars)
	for i := range conf {
		conf[i] = z * stat.StdDev(trials[i], nil)
	}

	return data.NewVector(conf)
}
