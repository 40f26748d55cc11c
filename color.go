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

package rgb

import (
	"fmt"
	"image/color"
)

// Color is a validated 8-bit RGB colour.
//
// A Color returned by this package has passed every check of the Converter
// that produced it. There are no setters; treat it as a value.
type Color struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

var _ color.Color = Color{}

// RGBA implements image/color.Color. The colour is fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.Red)
	r |= r << 8
	g = uint32(c.Green)
	g |= g << 8
	b = uint32(c.Blue)
	b |= b << 8
	a = 0xffff
	return
}

// String returns the colour as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}

// GoString returns the debug form, e.g. "Color{red: 183, green: 65, blue: 14}".
func (c Color) GoString() string {
	return fmt.Sprintf("Color{red: %d, green: %d, blue: %d}", c.Red, c.Green, c.Blue)
}

// Triple returns the channels widened back into a candidate. Converting it
// again with the converter that produced c yields c.
func (c Color) Triple() Triple {
	return Triple{R: int16(c.Red), G: int16(c.Green), B: int16(c.Blue)}
}
