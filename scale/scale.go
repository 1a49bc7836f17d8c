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

// Package scale maps unit-hypercube samples into the parameter
// space of a problem, either linearly into [low, high) ranges or
// through the inverse CDF of a marginal distribution.
//
// All functions in this package are pure: the input matrix is
// never modified and the scaled values are returned in a new
// matrix of the same shape.
package scale

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gosens-project/gosens/data"
	"github.com/gosens-project/gosens/internal"
)

// Linear maps each column of a unit-hypercube matrix into the
// corresponding [low, high) range. It accepts a matrix with
// values in [0, 1) and one bound pair per column, and returns
// the scaled values in a new matrix. It returns error if the
// number of bound pairs differs from the number of columns.
func Linear(m data.Matrix, bounds [][2]float64) (data.Matrix, error) {
	if len(bounds) != m.Cols() {
		return nil, errors.Wrapf(internal.MalformedBounds,
			"got %d bound pairs for %d columns", len(bounds), m.Cols())
	}

	quantiles := make([]distuv.Uniform, len(bounds))
	for i, b := range bounds {
		quantiles[i] = distuv.Uniform{Min: b[0], Max: b[1]}
	}

	return apply(m, func(i int, u float64) float64 {
		return quantiles[i].Quantile(u)
	}), nil
}

// Nonuniform maps each column of a unit-hypercube matrix through
// the inverse CDF of its parameter's marginal distribution. The
// bound pair of a parameter carries the distribution parameters:
//
//	unif    - low and high of the range
//	norm    - mean and standard deviation
//	lognorm - mean and standard deviation of the underlying normal
//	triang  - width of the support [0, width] and the peak as a
//	          fraction of the width, in (0, 1)
//
// It returns the scaled values in a new matrix, or error if the
// bounds or dists do not match the matrix columns, a tag is
// unknown, or a distribution parameter is out of its domain.
func Nonuniform(m data.Matrix, bounds [][2]float64, dists []string) (data.Matrix, error) {
	if len(bounds) != m.Cols() {
		return nil, errors.Wrapf(internal.MalformedBounds,
			"got %d bound pairs for %d columns", len(bounds), m.Cols())
	}
	if len(dists) != m.Cols() {
		return nil, errors.Wrapf(internal.MalformedDists,
			"got %d distributions for %d columns", len(dists), m.Cols())
	}

	quantiles := make([]func(float64) float64, len(dists))
	for i := range dists {
		q, err := quantile(dists[i], bounds[i])
		if err != nil {
			return nil, errors.Wrapf(err, "column %d", i)
		}
		quantiles[i] = q
	}

	return apply(m, func(i int, u float64) float64 {
		return quantiles[i](u)
	}), nil
}

// quantile builds the inverse CDF for one parameter.
func quantile(dist string, b [2]float64) (func(float64) float64, error) {
	switch dist {
	case data.DistUniform:
		if !(b[0] < b[1]) {
			return nil, errors.Wrapf(internal.MalformedBounds, "uniform range [%g, %g]", b[0], b[1])
		}
		return distuv.Uniform{Min: b[0], Max: b[1]}.Quantile, nil
	case data.DistNormal:
		if b[1] <= 0 {
			return nil, errors.Wrapf(internal.MalformedDists, "normal needs a positive standard deviation, got %g", b[1])
		}
		return distuv.Normal{Mu: b[0], Sigma: b[1]}.Quantile, nil
	case data.DistLogNormal:
		if b[1] <= 0 {
			return nil, errors.Wrapf(internal.MalformedDists, "lognormal needs a positive standard deviation, got %g", b[1])
		}
		return distuv.LogNormal{Mu: b[0], Sigma: b[1]}.Quantile, nil
	case data.DistTriangular:
		if b[0] <= 0 || b[1] <= 0 || b[1] >= 1 {
			return nil, errors.Wrapf(internal.MalformedDists,
				"triangular needs a positive width and a peak fraction in (0, 1), got %g and %g", b[0], b[1])
		}
		return distuv.NewTriangle(0, b[0], b[0]*b[1], nil).Quantile, nil
	}

	return nil, errors.Wrapf(internal.MalformedDists, "unknown distribution %q", dist)
}

// apply builds a new matrix with f mapped over every element,
// passing the column index along.
func apply(m data.Matrix, f func(col int, u float64) float64) data.Matrix {
	scaled := make([]data.Vector, m.Rows())
	for r, row := range m {
		newRow := make([]float64, len(row))
		for c, u := range row {
			newRow[c] = f(c, u)
		}
		scaled[r] = data.NewVector(newRow)
	}

	return data.Matrix(scaled)
}
