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

// Package render prints conversion results.
//
// Text output is the debug form of rgb.Result, optionally followed by a
// swatch painted in the converted colour and, for failures, the transport
// statuses the error maps to:
//
//	sample: Ok(Color{red: 183, green: 65, blue: 14})  #b7410e
//	sample: Err(InvalidChannel) [http 400, grpc OutOfRange]
//
// JSON output is a google.protobuf.Struct encoded with protojson. protojson
// output is not byte-stable across builds; compare it structurally.
package render
