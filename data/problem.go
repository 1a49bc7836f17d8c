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
	"github.com/samber/lo"

	"github.com/gosens-project/gosens/internal"
)

// Distribution tags accepted in the Dists field of a Problem.
// The second bound of a parameter takes the role of the second
// distribution parameter, following the usual convention for
// sensitivity-analysis parameter files.
const (
	DistUniform    = "unif"
	DistNormal     = "norm"
	DistLogNormal  = "lognorm"
	DistTriangular = "triang"
)

var knownDists = []string{DistUniform, DistNormal, DistLogNormal, DistTriangular}

// Problem describes the input space of a model under analysis:
// an ordered set of named parameters, each with a [low, high] range
// and an optional marginal distribution.
//
// A nil Dists field means every parameter is uniform over its bounds.
// Samplers and estimators assume a Problem constructed by NewProblem
// or NewProblemDist; they do not re-validate it.
type Problem struct {
	Names  []string
	Bounds [][2]float64
	Dists  []string
}

// NewProblem returns a Problem with uniform parameters.
// It accepts an ordered slice of parameter names and a matching
// slice of [low, high] bounds. It returns error if the slices
// differ in length, are empty, contain a duplicate name, or
// contain a range with low >= high.
func NewProblem(names []string, bounds [][2]float64) (*Problem, error) {
	return NewProblemDist(names, bounds, nil)
}

// NewProblemDist returns a Problem whose parameters follow the
// given marginal distributions. Dists may be nil, meaning all
// parameters are uniform; otherwise it must name one known
// distribution tag per parameter.
func NewProblemDist(names []string, bounds [][2]float64, dists []string) (*Problem, error) {
	if len(names) == 0 {
		return nil, errors.Wrap(internal.MalformedProblem, "at least one parameter is needed")
	}
	if len(bounds) != len(names) {
		return nil, errors.Wrapf(internal.MalformedProblem,
			"got %d names but %d bounds", len(names), len(bounds))
	}
	if dup := lo.FindDuplicates(names); len(dup) > 0 {
		return nil, errors.Wrapf(internal.MalformedProblem, "duplicate parameter name %q", dup[0])
	}

	if dists != nil {
		if len(dists) != len(names) {
			return nil, errors.Wrapf(internal.MalformedDists,
				"got %d names but %d distributions", len(names), len(dists))
		}
		for i, d := range dists {
			if !lo.Contains(knownDists, d) {
				return nil, errors.Wrapf(internal.MalformedDists,
					"parameter %q has unknown distribution %q", names[i], d)
			}
		}
	}

	// For a non-uniform parameter the bound pair carries the
	// distribution parameters, so low < high only binds uniform
	// ones; the rest get their distribution's domain checks.
	for i, b := range bounds {
		dist := DistUniform
		if dists != nil {
			dist = dists[i]
		}

		switch dist {
		case DistUniform:
			if !(b[0] < b[1]) {
				return nil, errors.Wrapf(internal.MalformedBounds,
					"parameter %q has range [%g, %g]", names[i], b[0], b[1])
			}
		case DistNormal, DistLogNormal:
			if b[1] <= 0 {
				return nil, errors.Wrapf(internal.MalformedDists,
					"parameter %q needs a positive standard deviation, got %g", names[i], b[1])
			}
		case DistTriangular:
			if b[0] <= 0 || b[1] <= 0 || b[1] >= 1 {
				return nil, errors.Wrapf(internal.MalformedDists,
					"parameter %q needs a positive width and a peak fraction in (0, 1), got %g and %g",
					names[i], b[0], b[1])
			}
		}
	}

	return &Problem{Names: names, Bounds: bounds, Dists: dists}, nil
}

// NumVars returns the number of parameters of problem p.
func (p *Problem) NumVars() int {
	return len(p.Names)
}

// HasDists returns a bool indicating whether problem p
// specifies non-uniform marginal distributions.
func (p *Problem) HasDists() bool {
	return len(p.Dists) > 0
}
