package service

import (
	"context"

	"indiekaum-bot/internal/config"
	"indiekaum-bot/internal/domain"

	"go.uber.org/zap"
)

// MemberLookup queries a user's membership status in a group
type MemberLookup interface {
	MemberStatus(ctx context.Context, groupID, userID int64) (domain.MemberStatus, error)
}

// MembershipService classifies users against the target group
type MembershipService struct {
	lookup MemberLookup
	groups *config.GroupStore
	logger *zap.Logger
}

// NewMembershipService creates a new membership service
func NewMembershipService(lookup MemberLookup, groups *config.GroupStore, logger *zap.Logger) *MembershipService {
	return &MembershipService{
		lookup: lookup,
		groups: groups,
		logger: logger,
	}
}

// IsMember reports whether the user already belongs to the group.
// Lookup failures count as not a member, so a failed check re-opens
// onboarding instead of silently granting access.
func (s *MembershipService) IsMember(ctx context.Context, userID int64) bool {
	groupID := s.groups.Current()

	status, err := s.lookup.MemberStatus(ctx, groupID, userID)
	if err != nil {
		s.logger.Warn("Membership lookup failed, treating as not a member",
			zap.Int64("group_id", groupID),
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return false
	}

	return status.Joined()
}
