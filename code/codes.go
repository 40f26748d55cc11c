/*
   Copyright 2025 The DIRPX Authors

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

package code

// Conversion error codes.
//
// These are the two tags of a failed conversion. Mappers translate them to
// transport statuses; renderers print them through Tag.
const (
	// BadLength indicates that a variable-length candidate did not contain
	// exactly three channel values. Fixed-shape candidates (triples and
	// arrays) can never produce it.
	//
	// Can be mapped to an HTTP 400 / gRPC InvalidArgument.
	BadLength Code = "bad_length"

	// InvalidChannel indicates that at least one channel value is outside
	// the accepted range, or that it cannot be narrowed to an 8-bit
	// unsigned integer. Both failures share this code; the reason tells
	// them apart.
	//
	// Can be mapped to an HTTP 400 / gRPC OutOfRange.
	InvalidChannel Code = "invalid_channel"
)

// Internal indicates a failure that is not a conversion error at all,
// e.g. a broken renderer or a corrupt sample table.
//
// Can be mapped to an HTTP 500 / gRPC Internal.
const Internal Code = "internal"
