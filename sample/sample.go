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
	"time"

	"github.com/gosens-project/gosens/data"
	"github.com/gosens-project/gosens/scale"
)

// timeSeed derives a seed for samplers constructed without one,
// so their draws vary per invocation.
func timeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}

// scaleUnit maps a unit-hypercube design into the parameter space
// of problem p, linearly when all parameters are uniform over
// their bounds and through inverse CDFs otherwise.
func scaleUnit(p *data.Problem, unit data.Matrix) (data.Matrix, error) {
	if p.HasDists() {
		return scale.Nonuniform(unit, p.Bounds, p.Dists)
	}

	return scale.Linear(unit, p.Bounds)
}
