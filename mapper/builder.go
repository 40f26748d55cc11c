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

type prefixRule struct {
	// prefix is the raw, dot-separated reason prefix (may contain "*").
	prefix string
	val    int
}

// rules is the mutable, per-transport half of a builder. gRPC values are
// kept as int and converted when the mapper is frozen.
type rules struct {
	defaults  map[code.Code]int
	overrides map[code.Code]int
	prefixes  map[code.Code][]prefixRule
}

func newRules() rules {
	return rules{
		defaults:  make(map[code.Code]int),
		overrides: make(map[code.Code]int),
		prefixes:  make(map[code.Code][]prefixRule),
	}
}

type builder struct {
	http rules
	grpc rules

	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder returns a builder seeded with the library defaults.
func newBuilder() *builder {
	b := &builder{
		http:         newRules(),
		grpc:         newRules(),
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
	for c, v := range defaultHTTP {
		b.http.defaults[c] = v
	}
	for c, v := range defaultGRPC {
		b.grpc.defaults[c] = int(v)
	}
	return b
}
