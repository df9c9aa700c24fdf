package handler

import (
	"github.com/speech4j/security-service/internal/core/domain"
	"github.com/speech4j/security-service/internal/core/ports"
)

// Explicit field-by-field constructors keep the JSON contract decoupled from
// the service types and leave no reflective path that could carry a hash out.

func toUserResponse(v *ports.UserView) userResponse {
	return userResponse{
		ID:       v.ID,
		Username: v.Username,
		Email:    v.Email,
	}
}

func toUserListResponse(views []ports.UserView) []userResponse {
	out := make([]userResponse, len(views))
	for i := range views {
		out[i] = toUserResponse(&views[i])
	}
	return out
}

func toRoleResponse(r *domain.Role) roleResponse {
	return roleResponse{ID: r.ID, Name: r.Name}
}

func toRoleListResponse(roles []domain.Role) []roleResponse {
	out := make([]roleResponse, len(roles))
	for i := range roles {
		out[i] = toRoleResponse(&roles[i])
	}
	return out
}
