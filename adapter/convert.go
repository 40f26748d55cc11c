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

	"dirpx.dev/rgb"
	"dirpx.dev/rgb/apis"
)

// ToDescriptor flattens a conversion error together with its resolved
// transport status into an apis.ErrorDescriptor for structured logs.
func ToDescriptor(e *rgb.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Code:       string(e.Code),
		Reason:     string(e.Reason),
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message,
	}
}

// ToView converts an error into an apis.ErrorView. Any error works: codes,
// reasons and details are found through the apis interfaces anywhere in the
// wrap chain, and an error that exposes no code is reported as "internal".
func ToView(err error) apis.ErrorView {
	if err == nil {
		return apis.ErrorView{}
	}
	v := apis.ErrorView{Code: "internal", Message: err.Error()}
	var e *rgb.Error
	if errors.As(err, &e) {
		v.Message = e.Message
	}
	var ce apis.CodedError
	if errors.As(err, &ce) {
		v.Code = ce.ErrorCode()
	}
	var re apis.ReasonedError
	if errors.As(err, &re) {
		v.Reason = re.ErrorReason()
	}
	var de apis.DetailedError
	if errors.As(err, &de) {
		if ds := de.ErrorDetails(); len(ds) > 0 {
			v.Details = ds
		}
	}
	return v
}
