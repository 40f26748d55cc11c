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

package adapter

import (
	"errors"
	"fmt"
	"testing"

	"dirpx.dev/rgb"
	"dirpx.dev/rgb/apis"
	"google.golang.org/grpc/codes"
)

func TestToDescriptor(t *testing.T) {
	_, err := rgb.FromSlice([]int16{1, 2, 3, 4})
	var e *rgb.Error
	if !errors.As(err, &e) {
		t.Fatalf("not *rgb.Error: %v", err)
	}
	d := ToDescriptor(e, apis.Status{HTTP: 400, GRPC: codes.InvalidArgument})
	want := apis.ErrorDescriptor{
		Code:       "bad_length",
		Reason:     "rgb.slice.length",
		HTTPStatus: 400,
		GRPCCode:   int(codes.InvalidArgument),
		Message:    "got 4 values, want 3",
	}
	if d != want {
		t.Fatalf("ToDescriptor = %+v, want %+v", d, want)
	}
	if ToDescriptor(nil, apis.Status{}) != (apis.ErrorDescriptor{}) {
		t.Fatalf("nil error must give zero descriptor")
	}
}

func TestToView(t *testing.T) {
	_, err := rgb.FromTuple(0, 10, 10)
	v := ToView(err)
	if v.Code != "invalid_channel" || v.Reason != "rgb.channel.range" {
		t.Fatalf("ToView code/reason = %q/%q", v.Code, v.Reason)
	}
	if v.Message != "red channel 0 is outside [1, 255]" {
		t.Fatalf("ToView message = %q", v.Message)
	}
	if len(v.Details) != 1 || v.Details[0].Field != "red" {
		t.Fatalf("ToView details = %+v", v.Details)
	}
}

func TestToView_Wrapped(t *testing.T) {
	_, err := rgb.FromSlice(nil)
	v := ToView(fmt.Errorf("sample %d: %w", 3, err))
	if v.Code != "bad_length" || v.Reason != "rgb.slice.length" || v.Message != "got 0 values, want 3" {
		t.Fatalf("ToView(wrapped) = %+v", v)
	}
}

func TestToView_ForeignError(t *testing.T) {
	v := ToView(errors.New("boom"))
	if v.Code != "internal" || v.Message != "boom" || v.Reason != "" || v.Details != nil {
		t.Fatalf("ToView(foreign) = %+v", v)
	}
	if ToView(nil).Code != "" {
		t.Fatalf("ToView(nil) must be empty")
	}
}
