package errors

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// ToGRPCError converts err to a gRPC status error. Errors that already carry
// a status pass through.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(GetCode(err).GRPCCode(), GetMessage(err))
}

// UnaryServerInterceptor converts handler errors with ToGRPCError
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		return resp, ToGRPCError(err)
	}
}
