/** Copyright 2024-2026 the arith authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package common

import "fmt"

const (
	ARITH_VERSION_MAJOR = 0
	ARITH_VERSION_MINOR = 1
	ARITH_VERSION_PATCH = 0

	ARITH_VERSION = ((ARITH_VERSION_MAJOR*1000)+ARITH_VERSION_MINOR)*1000 +
		ARITH_VERSION_PATCH
)

var ARITH_VERSION_STRING = fmt.Sprintf(
	"%d.%d.%d",
	ARITH_VERSION_MAJOR,
	ARITH_VERSION_MINOR,
	ARITH_VERSION_PATCH,
)
