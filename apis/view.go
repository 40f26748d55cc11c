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

package apis

// ErrorView is a minimal, serializable representation of an error.
//
// This is *not* the concrete error type; it is the shape renderers print.
type ErrorView struct {
	// Code is the canonical error code, e.g. "bad_length".
	Code string `json:"code"`
	// Reason is the optional refinement, e.g. "rgb.slice.length".
	Reason string `json:"reason,omitempty"`
	// Message is the human-readable message.
	Message string `json:"message,omitempty"`
	// Details lists the structured details, if any.
	Details []Detail `json:"details,omitempty"`
}
