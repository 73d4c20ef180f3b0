package grpc

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/simaogato/wealthflow-tracker/internal/log"
)

// AuthInterceptor returns a gRPC unary server interceptor that validates
// the authorization token from request metadata.
// The token may be sent bare or as "Bearer <token>".
// If the token is missing or invalid, it returns status.Unauthenticated.
func AuthInterceptor(validToken string) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		authHeaders := md.Get("authorization")
		if len(authHeaders) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization header")
		}

		token := strings.TrimPrefix(authHeaders[0], "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(validToken)) != 1 {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		return handler(ctx, req)
	}
}

// LoggingInterceptor logs every call with its status code and duration,
// and makes logger available to handlers through log.FromContext.
func LoggingInterceptor(logger *log.Logger) grpc.UnaryServerInterceptor {
	logger = logger.WithComponent(log.ComponentGRPC)
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		start := time.Now()
		resp, err := handler(log.NewContext(ctx, logger), req)
		code := status.Code(err)

		level := slog.LevelInfo
		switch code {
		case codes.OK:
		case codes.Internal, codes.Unknown, codes.DataLoss:
			level = slog.LevelError
		default:
			level = slog.LevelWarn
		}

		fields := log.NewFields().
			WithRPC(info.FullMethod, code.String(), time.Since(start).Milliseconds()).
			WithError(err)
		logger.Log(ctx, level, "gRPC call completed", fields.ToSlice()...)
		return resp, err
	}
}

// RecoveryInterceptor turns a handler panic into codes.Internal so one bad
// call cannot take the process down.
func RecoveryInterceptor(logger *log.Logger) grpc.UnaryServerInterceptor {
	logger = logger.WithComponent(log.ComponentGRPC)
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in handler", log.FieldMethod, info.FullMethod, "panic", r)
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}
