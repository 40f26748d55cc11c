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

// Package code provides parsing, normalization and validation for rgb
// conversion error codes.
//
// A "code" is the tag of a conversion error: it answers "which case of
// failure is this?". The set is deliberately tiny:
//
//   - "bad_length": a variable-length input did not hold exactly three values;
//   - "invalid_channel": a channel value is out of range or does not fit
//     into an 8-bit unsigned integer;
//   - "internal": anything that is not a conversion failure.
//
// Codes are lowercased, underscore-separated and 3..64 characters long.
// The empty code ("") is NOT a valid code. Every error carries one.
package code
