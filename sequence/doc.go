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

// Package sequence includes generators of low-discrepancy
// (quasi-random) point sets in the unit hypercube, behind the
// Generator interface along with different implementations of
// this interface. Its primary purpose is to supply the
// space-filling base and perturbation points consumed by the
// radial one-at-a-time sampler.
//
// Every Sample call restarts a generator's sequence from its first
// point: repeating a call with the same count and dims repeats its
// point set exactly. Callers needing two non-overlapping streams
// must therefore request a superset in a single call and slice it,
// rather than call Sample twice.
package sequence
