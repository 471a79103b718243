package access

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clinistock/backend/internal/domain/access"
	"github.com/clinistock/backend/internal/domain/org"
	"github.com/clinistock/backend/internal/domain/shared"
)

const scopeCacheTTL = 5 * time.Minute

// Service handles granting, revoking and evaluating access scopes. Resolved
// scope sets are cached per user; every grant or revoke invalidates the
// affected user's entry, unit deletions are absorbed by the cache TTL.
type Service struct {
	scopeRepo    access.ScopeRepository
	locationRepo org.LocationRepository
	sectionRepo  org.SectionRepository
	wardRepo     org.WardRepository
	cache        access.ScopeCache
	logger       *zap.Logger
}

// NewService creates a new access Service
func NewService(
	scopeRepo access.ScopeRepository,
	locationRepo org.LocationRepository,
	sectionRepo org.SectionRepository,
	wardRepo org.WardRepository,
	cache access.ScopeCache,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		scopeRepo:    scopeRepo,
		locationRepo: locationRepo,
		sectionRepo:  sectionRepo,
		wardRepo:     wardRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Grant creates a scope record for a user. The referenced units must form a
// consistent path; a section of another location or a ward of another section
// is rejected.
func (s *Service) Grant(ctx context.Context, req GrantScopeRequest) (*ScopeResponse, error) {
	location, err := s.locationRepo.FindByID(ctx, req.LocationID)
	if err != nil {
		return nil, err
	}

	var section *org.Section
	if req.SectionID != nil {
		if section, err = s.sectionRepo.FindByID(ctx, *req.SectionID); err != nil {
			return nil, err
		}
	}

	var ward *org.Ward
	if req.WardID != nil {
		if ward, err = s.wardRepo.FindByID(ctx, *req.WardID); err != nil {
			return nil, err
		}
	}

	scope, err := access.NewScope(req.Actor, req.UserID, location, section, ward)
	if err != nil {
		return nil, err
	}

	if err := s.scopeRepo.Save(ctx, scope); err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, req.UserID); err != nil {
		s.logger.Warn("failed to invalidate scope cache",
			zap.String("user_id", req.UserID.String()),
			zap.Error(err))
	}

	s.logger.Info("scope granted",
		zap.String("scope_id", scope.ID.String()),
		zap.String("user_id", req.UserID.String()),
		zap.String("location_id", req.LocationID.String()))
	return ToScopeResponse(scope), nil
}

// Revoke soft-deletes a single scope record
func (s *Service) Revoke(ctx context.Context, scopeID, actor uuid.UUID) error {
	scope, err := s.scopeRepo.FindByID(ctx, scopeID)
	if err != nil {
		return err
	}

	if err := s.scopeRepo.Delete(ctx, scopeID, actor); err != nil {
		return err
	}

	if err := s.cache.Invalidate(ctx, scope.UserID); err != nil {
		s.logger.Warn("failed to invalidate scope cache",
			zap.String("user_id", scope.UserID.String()),
			zap.Error(err))
	}

	s.logger.Info("scope revoked",
		zap.String("scope_id", scopeID.String()),
		zap.String("user_id", scope.UserID.String()))
	return nil
}

// ListForUser lists the active scope records of a user
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]ScopeResponse, error) {
	scopes, err := s.scopeRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]ScopeResponse, len(scopes))
	for i := range scopes {
		responses[i] = *ToScopeResponse(&scopes[i])
	}
	return responses, nil
}

// Authorize checks whether the user's scope set covers the requested triple,
// returning ErrScopeDenied when it does not. The scope set is read through the
// cache.
func (s *Service) Authorize(ctx context.Context, req AuthorizeRequest) error {
	scopes, err := s.resolveScopes(ctx, req.UserID)
	if err != nil {
		return err
	}

	if !scopes.Allows(req.LocationID, req.SectionID, req.WardID) {
		return shared.ErrScopeDenied
	}
	return nil
}

// resolveScopes loads a user's scope set through the cache
func (s *Service) resolveScopes(ctx context.Context, userID uuid.UUID) (access.ScopeSet, error) {
	cached, err := s.cache.Get(ctx, userID)
	if err != nil {
		s.logger.Warn("scope cache read failed, falling back to repository",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	scopes, err := s.scopeRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, userID, scopes, scopeCacheTTL); err != nil {
		s.logger.Warn("failed to cache scopes",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}
	return scopes, nil
}
