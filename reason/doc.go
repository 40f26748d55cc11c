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

// Package reason defines an optional, structured refinement for rgb error
// codes.
//
// Where a Code answers "which case of failure is this?", a Reason answers
// "which check produced it?":
//
//   - "rgb.slice.length": the slice length check;
//   - "rgb.channel.range": the inclusive channel range check;
//   - "rgb.channel.narrow": the int16 to uint8 narrowing step.
//
// The zero value ("") is allowed and means no refinement was provided.
package reason
