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

package mapper

import (
	"net/http"

	"dirpx.dev/rgb/code"
	"google.golang.org/grpc/codes"
)

// defaultHTTP holds the built-in HTTP statuses. Conversion failures are
// client errors; everything else is a server error.
var defaultHTTP = map[code.Code]int{
	code.BadLength:      http.StatusBadRequest, // Wrong number of channel values.
	code.InvalidChannel: http.StatusBadRequest, // Channel outside the accepted range.
	code.Internal:       http.StatusInternalServerError,
}

// defaultGRPC holds the built-in gRPC statuses. OutOfRange is the canonical
// gRPC code for "value outside the accepted interval".
var defaultGRPC = map[code.Code]codes.Code{
	code.BadLength:      codes.InvalidArgument,
	code.InvalidChannel: codes.OutOfRange,
	code.Internal:       codes.Internal,
}
