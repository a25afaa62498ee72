package auth

import (
	"context"
	"strings"

	pb "timebank/api/v1"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Methods reachable without a token.
var publicMethods = map[string]struct{}{
	pb.AccountService_Login_FullMethodName:    {},
	pb.AccountService_Register_FullMethodName: {},
}

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	EmailKey  contextKey = "email"
	RolesKey  contextKey = "roles"
)

// AuthInterceptor validates the bearer token of every non public method
// and puts the caller identity in the context.
func AuthInterceptor(ctx context.Context, req any,
	info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if isPublicMethod(info.FullMethod) {
		return handler(ctx, req)
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "metadata is missing")
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return nil, status.Error(codes.Unauthenticated, "authorization token is missing")
	}

	claims, err := ValidateToken(strings.TrimPrefix(values[0], "Bearer "))
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid or expired token")
	}
	return handler(WithIdentity(ctx, claims), req)
}

// WithIdentity stores the claims the way AuthInterceptor does.
func WithIdentity(ctx context.Context, claims *Claims) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
	ctx = context.WithValue(ctx, EmailKey, claims.Email)
	return context.WithValue(ctx, RolesKey, claims.Roles)
}

// UserIDFromContext returns the authenticated caller, or Unauthenticated.
func UserIDFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return "", status.Error(codes.Unauthenticated, "caller is not authenticated")
	}
	return userID, nil
}

func EmailFromContext(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// BearerToken attaches a token to outgoing calls.
func BearerToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func isPublicMethod(method string) bool {
	_, ok := publicMethods[method]
	return ok
}
