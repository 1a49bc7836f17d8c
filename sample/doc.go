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

// Package sample includes samplers generating structured input
// designs for global sensitivity analysis: the Latin hypercube
// sampler, which stratifies every parameter's marginal
// distribution, and the radial one-at-a-time sampler, which
// builds baseline points with single-coordinate perturbations
// for elementary-effect estimation.
//
// Samplers produce rows in the unit hypercube and hand them to
// the scale package, so each row of the returned matrix lies in
// the problem's parameter space. The model under analysis is then
// evaluated on these rows outside of this library.
package sample
