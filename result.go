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
	"errors"
	"fmt"
)

// Result pairs a conversion outcome. Exactly one of Color and Err is
// meaningful: Color is the zero value whenever Err is non-nil.
type Result struct {
	Color Color
	Err   error
}

// ResultOf wraps the two return values of a conversion.
func ResultOf(c Color, err error) Result {
	if err != nil {
		return Result{Err: err}
	}
	return Result{Color: c}
}

// Ok reports whether the conversion succeeded.
func (r Result) Ok() bool { return r.Err == nil }

// String returns the debug form:
//
//	Ok(Color{red: 183, green: 65, blue: 14})
//	Err(InvalidChannel)
//
// Errors that are not *Error print their text instead of a tag.
func (r Result) String() string {
	if r.Err == nil {
		return fmt.Sprintf("Ok(%#v)", r.Color)
	}
	var e *Error
	if errors.As(r.Err, &e) {
		return fmt.Sprintf("Err(%s)", e.Code.Tag())
	}
	return fmt.Sprintf("Err(%q)", r.Err.Error())
}
