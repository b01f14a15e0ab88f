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

package grpcx

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	gcodes "google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"dirpx.dev/clienterr"
	"dirpx.dev/clienterr/apis"
	"dirpx.dev/clienterr/classifier"
	"dirpx.dev/clienterr/kind"
)

type echoService interface {
	Echo(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type echoFunc func(context.Context, *structpb.Struct) (*structpb.Struct, error)

func (f echoFunc) Echo(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return f(ctx, in)
}

const echoMethod = "/clienterr.test.Echo/Echo"

var echoDesc = grpc.ServiceDesc{
	ServiceName: "clienterr.test.Echo",
	HandlerType: (*echoService)(nil),
	Methods: []grpc.MethodDesc{{
		MethodName: "Echo",
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			h := func(ctx context.Context, req any) (any, error) {
				return srv.(echoService).Echo(ctx, req.(*structpb.Struct))
			}
			if interceptor == nil {
				return h(ctx, in)
			}
			return interceptor(ctx, in, &grpc.UnaryServerInfo{Server: srv, FullMethod: echoMethod}, h)
		},
	}},
	Streams: []grpc.StreamDesc{},
}

func dial(t *testing.T, h echoFunc) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(UnaryServerInterceptor()))
	srv.RegisterService(&echoDesc, h)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	quiet := classifier.MustNew(classifier.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(UnaryClientInterceptor(quiet)),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func call(t *testing.T, conn *grpc.ClientConn, ctx context.Context) (*structpb.Struct, error) {
	t.Helper()
	in, _ := structpb.NewStruct(map[string]any{"q": "x"})
	out := new(structpb.Struct)
	err := conn.Invoke(ctx, echoMethod, in, out)
	return out, err
}

func TestRoundTrip_Success(t *testing.T) {
	conn := dial(t, func(_ context.Context, in *structpb.Struct) (*structpb.Struct, error) { return in, nil })
	out, err := call(t, conn, context.Background())
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if out.AsMap()["q"] != "x" {
		t.Fatalf("reply = %v", out.AsMap())
	}
}

func TestRoundTrip_BusinessFailure(t *testing.T) {
	conn := dial(t, func(context.Context, *structpb.Struct) (*structpb.Struct, error) {
		return nil, clienterr.Business("limit exceeded", clienterr.WithDetails(map[string]any{"limit": 5}))
	})
	_, err := call(t, conn, context.Background())

	var ce *clienterr.Error
	if !errors.As(err, &ce) {
		t.Fatalf("error %T is not classified", err)
	}
	if ce.Status() != 422 || ce.Message() != "limit exceeded" {
		t.Fatalf("got %d %q", ce.Status(), ce.Message())
	}
	if d, _ := ce.Details().(map[string]any); d["limit"] != float64(5) {
		t.Fatalf("details = %#v", ce.Details())
	}
	if gstatus.Code(errors.Unwrap(errors.Unwrap(ce))) != gcodes.FailedPrecondition {
		t.Fatal("record must unwrap to the original status error")
	}
}

func TestRoundTrip_ClassifiedFailure(t *testing.T) {
	conn := dial(t, func(context.Context, *structpb.Struct) (*structpb.Struct, error) {
		return nil, clienterr.NewError(kind.Validation, "bad field", nil, time.Now())
	})
	_, err := call(t, conn, context.Background())
	ce, ok := err.(*clienterr.Error)
	if !ok || ce.Status() != 400 || ce.Message() != "bad field" || ce.Details() != nil {
		t.Fatalf("got %v", err)
	}
}

func TestRoundTrip_ForeignFailure(t *testing.T) {
	conn := dial(t, func(context.Context, *structpb.Struct) (*structpb.Struct, error) {
		return nil, errors.New("boom")
	})
	_, err := call(t, conn, context.Background())
	ce, ok := err.(*clienterr.Error)
	if !ok || ce.Status() != 500 || ce.Message() != "boom" {
		t.Fatalf("got %v", err)
	}
}

func TestRoundTrip_Deadline(t *testing.T) {
	conn := dial(t, func(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := call(t, conn, ctx)
	ce, ok := err.(*clienterr.Error)
	if !ok || ce.Status() != 500 {
		t.Fatalf("got %v", err)
	}
}

func TestStatus_Codes(t *testing.T) {
	tests := []struct {
		name string
		want gcodes.Code
	}{
		{"ValidationError", gcodes.InvalidArgument},
		{"BusinessError", gcodes.FailedPrecondition},
		{"SystemError", gcodes.Internal},
		{"", gcodes.Internal},
		{"TypeError", gcodes.Internal},
	}
	for _, tt := range tests {
		if got := Status(apis.FailureView{Name: tt.name, Message: "m"}).Code(); got != tt.want {
			t.Fatalf("Status(%q).Code() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestExtractFailure(t *testing.T) {
	if _, ok := ExtractFailure(nil); ok {
		t.Fatal("nil must not extract")
	}
	if _, ok := ExtractFailure(errors.New("plain")); ok {
		t.Fatal("non-status error must not extract")
	}

	err := Status(apis.FailureView{Name: "TypeError", Message: "m", Details: []any{"a"}}).Err()
	v, ok := ExtractFailure(err)
	if !ok || v.Name != "TypeError" || v.Message != "m" {
		t.Fatalf("got %+v, %v", v, ok)
	}
	if d, _ := v.Details.([]any); len(d) != 1 || d[0] != "a" {
		t.Fatalf("details = %#v", v.Details)
	}

	v, ok = ExtractFailure(gstatus.Error(gcodes.Unavailable, "down"))
	if !ok || v.Name != "" || v.Message != "down" {
		t.Fatalf("got %+v, %v", v, ok)
	}
}
