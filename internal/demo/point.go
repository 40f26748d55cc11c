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

package demo

import (
	"errors"
	"fmt"
	"io"
)

// Point is the value bound in the pattern-binding demonstration.
type Point struct {
	X, Y int32
}

// bindPoint binds an optional point in a switch and keeps using the
// original variable afterwards. p receives a copy of the pointer, so y is
// never given up.
func bindPoint(w io.Writer) error {
	y := &Point{X: 100, Y: 200}

	switch p := y; {
	case p != nil:
		if _, err := fmt.Fprintf(w, "Co-ordinates are %d,%d\n", p.X, p.Y); err != nil {
			return err
		}
	default:
		return errors.New("demo: no match")
	}

	_, err := fmt.Fprintf(w, "y is still usable: %+v\n", *y)
	return err
}
