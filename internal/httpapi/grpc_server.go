package httpapi

import (
	"context"
	"errors"

	v1 "st29.ru/authcore/api/gen/go/api/proto/authcore/v1"

	"st29.ru/authcore/internal/auth"
	"st29.ru/authcore/internal/obs"
)

// GRPCServer implements the gRPC services defined in api/proto/authcore/v1.
// Responses carry an envelope status code instead of a transport error so
// clients always get a parseable body; 500 never exposes store detail.
type GRPCServer struct {
	v1.UnimplementedPermissionServiceServer
	v1.UnimplementedUserServiceServer

	gateway *auth.Gateway
	catalog *auth.Catalog
}

// NewGRPCServer creates the gRPC service wrapper.
func NewGRPCServer(gateway *auth.Gateway, catalog *auth.Catalog) *GRPCServer {
	return &GRPCServer{
		gateway: gateway,
		catalog: catalog,
	}
}

// ValidatePermission answers one permission question for a remote service.
func (s *GRPCServer) ValidatePermission(ctx context.Context, req *v1.PermissionRequest) (*v1.PermissionResponse, error) {
	d := s.authorize(ctx, req)
	if d.Err != nil {
		msg, code := envelopeStatus(d.Err)
		obs.ObserveDecision("grpc", decisionOutcome(d.Err))
		return &v1.PermissionResponse{IsAccess: false, Message: msg, Code: code}, nil
	}
	obs.ObserveDecision("grpc", "allow")
	return &v1.PermissionResponse{IsAccess: true, Message: "access granted", Code: 200}, nil
}

// ListUsers returns the user directory, gated by the permission embedded in
// the request.
func (s *GRPCServer) ListUsers(ctx context.Context, req *v1.ListUsersRequest) (*v1.ListUsersResponse, error) {
	d := s.authorize(ctx, req.GetPermission())
	if d.Err != nil {
		msg, code := envelopeStatus(d.Err)
		obs.ObserveDecision("grpc", decisionOutcome(d.Err))
		return &v1.ListUsersResponse{Message: msg, Code: code}, nil
	}
	obs.ObserveDecision("grpc", "allow")

	users, err := s.catalog.ListAllUsers(ctx)
	if err != nil {
		obs.Error("list users failed", err, nil)
		return &v1.ListUsersResponse{Message: "internal error", Code: 500}, nil
	}
	resp := &v1.ListUsersResponse{Message: "ok", Code: 200}
	for _, u := range users {
		resp.Users = append(resp.Users, &v1.User{
			Id:      u.ID,
			Name:    u.Name,
			Surname: u.Surname,
		})
	}
	return resp, nil
}

func (s *GRPCServer) authorize(ctx context.Context, req *v1.PermissionRequest) auth.Decision {
	if req == nil {
		return auth.Decision{Err: auth.ErrMissingCredential}
	}
	return s.gateway.Authorize(ctx, req.GetSessionToken(), req.GetService(), req.GetEntity(), req.GetAction())
}

func envelopeStatus(err error) (string, int32) {
	switch {
	case errors.Is(err, auth.ErrMissingCredential):
		return "authentication required", 401
	case errors.Is(err, auth.ErrInvalidSession):
		return "invalid or expired session", 401
	case errors.Is(err, auth.ErrForbidden):
		return "permission denied", 403
	default:
		obs.Error("authorization failed", err, map[string]any{"surface": "grpc"})
		return "internal error", 500
	}
}
