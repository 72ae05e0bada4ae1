package users

import (
	"context"
	"errors"

	"connectrpc.com/connect"
)

// StaffInterceptor rejects RPCs from anonymous or non-staff callers. It
// relies on Middleware having run on the HTTP request.
func StaffInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient {
				return next(ctx, req)
			}

			user, ok := UserFromContext(ctx)
			if !ok {
				return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("authentication required"))
			}
			if !user.IsStaff {
				return nil, connect.NewError(connect.CodePermissionDenied, errors.New("staff access required"))
			}
			return next(ctx, req)
		}
	}
}

// BearerInterceptor attaches a session token to outgoing RPCs
func BearerInterceptor(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient && token != "" {
				req.Header().Set("Authorization", "Bearer "+token)
			}
			return next(ctx, req)
		}
	}
}
