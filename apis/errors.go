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

// CodedError is an error classified by a machine-readable code such as
// "bad_length" or "invalid_channel".
//
// The returned value MUST be non-empty and already normalized by the
// rgb/code package. Adapters treat unknown codes as internal errors.
type CodedError interface {
	error

	// ErrorCode returns the machine-readable error code.
	ErrorCode() string
}

// ReasonedError is an error that names the check which produced it, in
// addition to its code.
//
//	code:   "invalid_channel"
//	reason: "rgb.channel.range"  -> the inclusive range check failed
//
//	code:   "invalid_channel"
//	reason: "rgb.channel.narrow" -> the uint8 narrowing failed
type ReasonedError interface {
	error

	// ErrorReason returns the reason. It MAY be empty.
	ErrorReason() string
}

// DetailedError exposes structured details, e.g. which channel failed and
// with what value. Returning nil means "no extra details".
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}
