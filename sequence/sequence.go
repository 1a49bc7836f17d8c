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
	"github.com/gosens-project/gosens/data"
)

// Generator is an interface for deterministic generators of
// low-discrepancy point sets.
//
// Sample returns the first count points of the generator's
// sequence in dims dimensions, one point per matrix row, every
// coordinate in [0, 1). The sequence restarts on each call.
type Generator interface {
	Sample(count, dims int) (data.Matrix, error)
}
