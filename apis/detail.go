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

// Detail is a single structured piece of information attached to an
// error. It is a view type: small and safe to marshal.
type Detail struct {
	// Type classifies the detail, e.g. "channel" or "length".
	Type string `json:"type,omitempty"`

	// Field is the logical name of the failing input, e.g. "red". Empty
	// for errors that concern the input as a whole.
	Field string `json:"field,omitempty"`

	// Reason is a short explanation such as "out_of_range".
	Reason string `json:"reason,omitempty"`

	// Info carries extra data (value, min, max, length). Values are
	// pre-formatted strings so they survive JSON/proto round-trips.
	Info map[string]string `json:"info,omitempty"`
}
