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

// Package grpcx carries client-side failures across gRPC.
//
// On the client, UnaryClientInterceptor is the transport failure adapter:
// every failed unary call is classified before the caller sees it. The
// discriminant travels as a google.rpc.ErrorInfo detail in Domain, the
// payload as a google.protobuf.Value detail.
//
// On the server, UnaryServerInterceptor encodes *clienterr.Raw and
// *clienterr.Error failures into statuses with those details. Other
// errors are returned as-is.
package grpcx

import (
	"context"
	"errors"
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/clienterr"
	"dirpx.dev/clienterr/adapter"
	"dirpx.dev/clienterr/apis"
	"dirpx.dev/clienterr/classifier"
	"dirpx.dev/clienterr/kind"
)

// Domain is the google.rpc.ErrorInfo domain discriminants are stamped in.
const Domain = "clienterr.dirpx.dev"

// UnaryClientInterceptor returns a gRPC UnaryClientInterceptor that
// replaces every call error with its classified record. A nil classifier
// means classifier.Default.
func UnaryClientInterceptor(c apis.Classifier) grpc.UnaryClientInterceptor {
	if c == nil {
		c = classifier.Default
	}
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		err := invoker(ctx, method, req, reply, cc, opts...)
		if err == nil {
			return nil
		}
		if v, ok := ExtractFailure(err); ok {
			return c.Classify(adapter.FromFailureView(v, err))
		}
		return c.Classify(err)
	}
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that maps
// clienterr failures onto statuses carrying the discriminant and payload.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		v, ok := describe(err)
		if !ok {
			// Not a clienterr failure, return as-is.
			return nil, err
		}
		return nil, Status(v).Err()
	}
}

// Code returns the gRPC code a kind is sent with.
func Code(k kind.Kind) gcodes.Code {
	switch k {
	case kind.Validation:
		return gcodes.InvalidArgument
	case kind.Business:
		return gcodes.FailedPrecondition
	default:
		return gcodes.Internal
	}
}

// Status encodes a failure view as a gRPC status.
//
// If the details cannot be attached the bare status is returned.
func Status(v apis.FailureView) *gstatus.Status {
	k, _ := kind.Lookup(v.Name)
	base := gstatus.New(Code(k), v.Message)

	var details []protoadapt.MessageV1
	if v.Name != "" {
		details = append(details, &errdetails.ErrorInfo{
			Reason:   v.Name,
			Domain:   Domain,
			Metadata: map[string]string{"status": strconv.Itoa(k.Status())},
		})
	}
	if v.Details != nil {
		if val, err := structpb.NewValue(v.Details); err == nil {
			details = append(details, val)
		}
	}
	if len(details) == 0 {
		return base
	}
	if with, err := base.WithDetails(details...); err == nil {
		return with
	}
	return base
}

// ExtractFailure reads a failure view out of a gRPC error. It reports false
// when err carries no gRPC status. Statuses without our details still
// yield a view with the status message and no discriminant.
func ExtractFailure(err error) (apis.FailureView, bool) {
	if err == nil {
		return apis.FailureView{}, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return apis.FailureView{}, false
	}
	v := apis.FailureView{Message: st.Message()}
	for _, d := range st.Details() {
		switch d := d.(type) {
		case *errdetails.ErrorInfo:
			if d.GetDomain() == Domain {
				v.Name = d.GetReason()
			}
		case *structpb.Value:
			v.Details = d.AsInterface()
		}
	}
	return v, true
}

// describe flattens a clienterr failure found anywhere in err's chain.
func describe(err error) (apis.FailureView, bool) {
	var ce *clienterr.Error
	if errors.As(err, &ce) && ce != nil {
		return apis.FailureView{Name: string(ce.Kind()), Message: ce.Message(), Details: ce.Details()}, true
	}
	var r *clienterr.Raw
	if errors.As(err, &r) && r != nil {
		return adapter.ToFailureView(r), true
	}
	return apis.FailureView{}, false
}
