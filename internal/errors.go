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

package internal

import (
	"errors"
	"fmt"
)

var malformedStr = "is not of the proper form"

var MalformedProblem = errors.New(fmt.Sprintf("problem definition %s", malformedStr))
var MalformedBounds = errors.New(fmt.Sprintf("parameter bounds %s", malformedStr))
var MalformedDists = errors.New(fmt.Sprintf("distribution list %s", malformedStr))
var MalformedMatrix = errors.New(fmt.Sprintf("sample matrix %s", malformedStr))
