package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/speech4j/security-service/internal/core/ports"
)

// AuthorityResolver answers "which authorities does this subject carry" for
// the authorization overlay, consulting the Redis cache before the store.
type AuthorityResolver struct {
	roles ports.RoleRepository
	cache AuthorityCache
	log   zerolog.Logger
}

func NewAuthorityResolver(roles ports.RoleRepository, cache AuthorityCache, log zerolog.Logger) *AuthorityResolver {
	return &AuthorityResolver{roles: roles, cache: cache, log: log}
}

// Authorities returns the role names attached to the user. Cache hits skip
// the store entirely; misses are backfilled with a short TTL.
func (r *AuthorityResolver) Authorities(ctx context.Context, userID string) ([]string, error) {
	if names, ok := r.cache.Get(ctx, userID); ok {
		return names, nil
	}

	roles, err := r.roles.FindByUserID(ctx, userID)
	if err != nil {
		r.log.Error().Err(err).Str("user_id", userID).Msg("authority lookup failed")
		return nil, err
	}

	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = role.Name
	}
	r.cache.Set(ctx, userID, names)
	return names, nil
}
