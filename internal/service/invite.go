package service

import (
	"context"
	"errors"
	"time"

	"indiekaum-bot/internal/config"
	"indiekaum-bot/internal/domain"

	"go.uber.org/zap"
)

const (
	// inviteTTL is how long an issued invite link stays redeemable
	inviteTTL = 10 * time.Minute
	// inviteMemberLimit makes every link single-use
	inviteMemberLimit = 1
)

// LinkCreator creates invite links for a group
type LinkCreator interface {
	CreateInviteLink(ctx context.Context, groupID int64, memberLimit int, expireAt time.Time) (string, error)
}

// InviteService issues single-use, expiring invite links into the group
type InviteService struct {
	creator LinkCreator
	groups  *config.GroupStore
	logger  *zap.Logger
	now     func() time.Time
}

// NewInviteService creates a new invite service
func NewInviteService(creator LinkCreator, groups *config.GroupStore, logger *zap.Logger) *InviteService {
	return &InviteService{
		creator: creator,
		groups:  groups,
		logger:  logger,
		now:     time.Now,
	}
}

// Issue creates a single-use invite link expiring 10 minutes from now.
// When creation fails because the group migrated to a new chat id, the new
// id is persisted as the configured group and issuance is retried once.
func (s *InviteService) Issue(ctx context.Context) (string, error) {
	groupID := s.groups.Current()

	link, err := s.creator.CreateInviteLink(ctx, groupID, inviteMemberLimit, s.now().Add(inviteTTL))
	if err == nil {
		return link, nil
	}

	var migrated *domain.GroupMigratedError
	if !errors.As(err, &migrated) {
		return "", err
	}

	s.logger.Warn("Group migrated, switching to new chat id",
		zap.Int64("old_group_id", groupID),
		zap.Int64("new_group_id", migrated.NewChatID),
	)

	if err := s.groups.Set(migrated.NewChatID); err != nil {
		// The retry below still targets the new id
		s.logger.Error("Failed to persist migrated group id", zap.Error(err))
	}

	return s.creator.CreateInviteLink(ctx, migrated.NewChatID, inviteMemberLimit, s.now().Add(inviteTTL))
}
