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

// Package mapper provides deterministic, immutable mappings from rgb error
// codes (dirpx.dev/rgb/code) and optional reasons (dirpx.dev/rgb/reason) to
// transport statuses for HTTP and gRPC.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the Code;
//  2. per-Code longest-prefix-match on the Reason;
//  3. per-Code default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Prefix rules are segment-aware: reasons are "."-separated segments and
// "*" matches exactly one segment:
//
//	WithHTTPPrefix(code.InvalidChannel, "rgb.channel.narrow", http.StatusUnprocessableEntity)
//	WithGRPCPrefix(code.InvalidChannel, "rgb.*.narrow", int(codes.InvalidArgument))
//
// # Library defaults
//
//	bad_length       400 / InvalidArgument
//	invalid_channel  400 / OutOfRange
//	internal         500 / Internal
//
// # Diagnostics
//
// Mapper.Explain returns a human-readable trace of how a (code, reason)
// pair was resolved. It is meant for logs and tests, not for parsing.
//
// All inputs are copied during New; a Mapper is safe to share.
package mapper
