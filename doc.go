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

// Package rgb converts candidate integer triples into validated 8-bit RGB
// colours.
//
// A candidate comes in one of three shapes: a Triple (or three int16
// arguments), a fixed [3]int16 array, or a []int16 slice whose length is
// only known at runtime. Values are int16 so that out-of-range input is
// detected instead of silently truncated.
//
// Conversion either yields a Color or a *Error tagged with one of two codes:
//
//   - code.BadLength: a slice did not hold exactly three values;
//   - code.InvalidChannel: a channel is outside the accepted range, or
//     does not fit into a uint8.
//
// The default accepted range is 1..255 inclusive. Zero is rejected; callers
// that want 0..255 build their own Converter:
//
//	cv, err := rgb.NewConverter(rgb.WithChannelRange(0, 255))
//
// Errors can be matched with errors.Is against ErrBadLength and
// ErrInvalidChannel regardless of the details they carry.
package rgb
