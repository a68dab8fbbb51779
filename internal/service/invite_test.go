package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"indiekaum-bot/internal/config"
	"indiekaum-bot/internal/domain"
	"indiekaum-bot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestInviteService_Issue(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	creator := new(testutil.MockLinkCreator)
	creator.On("CreateInviteLink", mock.Anything, int64(-100123), 1, now.Add(10*time.Minute)).
		Return("https://t.me/+abc123", nil)

	svc := NewInviteService(creator, newGroupStore(t, -100123), zap.NewNop())
	svc.now = func() time.Time { return now }

	link, err := svc.Issue(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "https://t.me/+abc123", link)
	creator.AssertExpectations(t)
}

func TestInviteService_IssueFailure(t *testing.T) {
	creator := new(testutil.MockLinkCreator)
	creator.On("CreateInviteLink", mock.Anything, int64(-100123), 1, mock.Anything).
		Return("", fmt.Errorf("not enough rights"))

	svc := NewInviteService(creator, newGroupStore(t, -100123), zap.NewNop())

	link, err := svc.Issue(context.Background())

	assert.Error(t, err)
	assert.Empty(t, link)
	creator.AssertExpectations(t)
}

func TestInviteService_IssueGroupMigrated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "group_id.json")
	groups, err := config.OpenGroupStore(path, -100123)
	assert.NoError(t, err)

	creator := new(testutil.MockLinkCreator)
	creator.On("CreateInviteLink", mock.Anything, int64(-100123), 1, mock.Anything).
		Return("", &domain.GroupMigratedError{NewChatID: -100999}).Once()
	creator.On("CreateInviteLink", mock.Anything, int64(-100999), 1, mock.Anything).
		Return("https://t.me/+fresh", nil).Once()

	svc := NewInviteService(creator, groups, zap.NewNop())

	link, err := svc.Issue(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "https://t.me/+fresh", link)
	assert.Equal(t, int64(-100999), groups.Current())
	creator.AssertExpectations(t)

	// The migrated id must survive a restart
	reopened, err := config.OpenGroupStore(path, -100123)
	assert.NoError(t, err)
	assert.Equal(t, int64(-100999), reopened.Current())
}

func TestInviteService_MigrationRetryFails(t *testing.T) {
	creator := new(testutil.MockLinkCreator)
	creator.On("CreateInviteLink", mock.Anything, int64(-100123), 1, mock.Anything).
		Return("", &domain.GroupMigratedError{NewChatID: -100999}).Once()
	creator.On("CreateInviteLink", mock.Anything, int64(-100999), 1, mock.Anything).
		Return("", fmt.Errorf("still failing")).Once()

	groups := newGroupStore(t, -100123)
	svc := NewInviteService(creator, groups, zap.NewNop())

	link, err := svc.Issue(context.Background())

	assert.Error(t, err)
	assert.Empty(t, link)

	// Only one retry is made and the new id stays configured
	assert.Equal(t, int64(-100999), groups.Current())
	creator.AssertExpectations(t)
}
