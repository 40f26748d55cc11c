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

// Package grpcx projects conversion errors onto gRPC statuses.
//
// The status code comes from an apis.Mapper; the payload uses the standard
// googleapis error details so that any gRPC client can decode it:
//
//   - errdetails.ErrorInfo: reason (upper-snake code), domain and the error
//     details as metadata;
//   - errdetails.BadRequest: one field violation naming the failing input.
//
// The package only builds and reads statuses. It registers no services and
// opens no connections.
package grpcx

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/rgb"
	"dirpx.dev/rgb/apis"
	"dirpx.dev/rgb/reason"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Domain is the ErrorInfo domain of every conversion error.
const Domain = "rgb.dirpx.dev"

// Status returns the gRPC status for err.
//
// nil maps to codes.OK. Errors that are not (and do not wrap) an *rgb.Error
// map to codes.Unknown with their text and no details.
func Status(m apis.Mapper, err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	var e *rgb.Error
	if !errors.As(err, &e) {
		return status.New(codes.Unknown, err.Error())
	}

	base := status.New(m.GRPCStatus(e.Code, e.Reason), e.Message)
	with, derr := base.WithDetails(errorInfo(e), badRequest(e))
	if derr != nil {
		return base
	}
	return with
}

// Err is Status(m, err).Err(). It returns nil for a nil err.
func Err(m apis.Mapper, err error) error {
	return Status(m, err).Err()
}

// ExtractErrorInfo pulls the ErrorInfo detail out of a gRPC error.
func ExtractErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := status.FromError(err)
	if !ok || err == nil {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}

// ExtractViolations returns the BadRequest field violations of a gRPC
// error, or nil when there are none.
func ExtractViolations(err error) []*errdetails.BadRequest_FieldViolation {
	st, ok := status.FromError(err)
	if !ok || err == nil {
		return nil
	}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			return br.GetFieldViolations()
		}
	}
	return nil
}

func errorInfo(e *rgb.Error) *errdetails.ErrorInfo {
	md := make(map[string]string, len(e.Details)+1)
	if e.Reason != reason.Empty {
		md["reason"] = string(e.Reason)
	}
	for k, v := range e.Details {
		md[k] = fmt.Sprint(v)
	}
	return &errdetails.ErrorInfo{
		Reason:   strings.ToUpper(string(e.Code)),
		Domain:   Domain,
		Metadata: md,
	}
}

// badRequest names the failing channel for channel errors and the channel
// list as a whole for everything else.
func badRequest(e *rgb.Error) *errdetails.BadRequest {
	field := "channels"
	if e.Reason.HasPrefix("rgb.channel") {
		if ch, ok := e.Details["channel"]; ok {
			field = fmt.Sprint(ch)
		}
	}
	return &errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: field, Description: e.Message},
		},
	}
}
