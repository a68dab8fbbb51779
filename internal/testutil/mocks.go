package testutil

import (
	"context"
	"time"

	"indiekaum-bot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockSessionRepository is a mock for repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Get(chatID int64) (*domain.Session, error) {
	args := m.Called(chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionRepository) Save(session *domain.Session) error {
	args := m.Called(session)
	return args.Error(0)
}

func (m *MockSessionRepository) Delete(chatID int64) error {
	args := m.Called(chatID)
	return args.Error(0)
}

func (m *MockSessionRepository) DeleteStale(maxAge time.Duration) (int, error) {
	args := m.Called(maxAge)
	return args.Int(0), args.Error(1)
}

// MockRecordSink is a mock for service.RecordSink
type MockRecordSink struct {
	mock.Mock
}

func (m *MockRecordSink) Append(ctx context.Context, record domain.IntakeRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockMemberLookup is a mock for service.MemberLookup
type MockMemberLookup struct {
	mock.Mock
}

func (m *MockMemberLookup) MemberStatus(ctx context.Context, groupID, userID int64) (domain.MemberStatus, error) {
	args := m.Called(ctx, groupID, userID)
	return args.Get(0).(domain.MemberStatus), args.Error(1)
}

// MockLinkCreator is a mock for service.LinkCreator
type MockLinkCreator struct {
	mock.Mock
}

func (m *MockLinkCreator) CreateInviteLink(ctx context.Context, groupID int64, memberLimit int, expireAt time.Time) (string, error) {
	args := m.Called(ctx, groupID, memberLimit, expireAt)
	return args.String(0), args.Error(1)
}
