package service

import (
	"context"
	"strings"

	"indiekaum-bot/internal/domain"
	"indiekaum-bot/internal/repository"
	"indiekaum-bot/internal/validate"

	"go.uber.org/zap"
)

// Keyboard selects the reply markup kind for a Reply
type Keyboard int

const (
	// KeyboardNone removes or keeps the current keyboard untouched
	KeyboardNone Keyboard = iota
	// KeyboardNext shows the one-time "Next" reply keyboard
	KeyboardNext
	// KeyboardJoin shows the inline join-group URL button
	KeyboardJoin
)

// Reply is a transport-agnostic outgoing message, so the state machine is
// testable without a live bot
type Reply struct {
	Text     string
	Markdown bool
	Keyboard Keyboard
	JoinURL  string
}

// RecordSink appends one completed intake record to the external store
type RecordSink interface {
	Append(ctx context.Context, record domain.IntakeRecord) error
}

// IntakeService runs the five-field intake conversation
type IntakeService struct {
	sessions repository.SessionRepository
	sink     RecordSink
	members  *MembershipService
	invites  *InviteService
	logger   *zap.Logger
}

// NewIntakeService creates a new intake service
func NewIntakeService(
	sessions repository.SessionRepository,
	sink RecordSink,
	members *MembershipService,
	invites *InviteService,
	logger *zap.Logger,
) *IntakeService {
	return &IntakeService{
		sessions: sessions,
		sink:     sink,
		members:  members,
		invites:  invites,
		logger:   logger,
	}
}

// Start handles /start and /restart. Users already in the group get a notice
// and no session; everyone else gets a fresh session at the welcome step.
func (s *IntakeService) Start(ctx context.Context, chatID, userID int64, restart bool) *Reply {
	if s.members.IsMember(ctx, userID) {
		if restart {
			return &Reply{Text: msgAlreadyVerified}
		}
		return &Reply{Text: msgAlreadyMember}
	}

	session := &domain.Session{ChatID: chatID, Step: domain.StepWelcome}
	if err := s.sessions.Save(session); err != nil {
		s.logger.Error("Failed to save session", zap.Int64("chat_id", chatID), zap.Error(err))
		return &Reply{Text: msgGeneric}
	}

	s.logger.Info("Intake started",
		zap.Int64("chat_id", chatID),
		zap.Int64("user_id", userID),
		zap.Bool("restart", restart),
	)

	if restart {
		return &Reply{Text: msgRestarted, Keyboard: KeyboardNext}
	}
	return &Reply{Text: msgWelcome, Markdown: true, Keyboard: KeyboardNext}
}

// Next handles the "Next" keyboard button. It only acts at the two gated
// steps; anywhere else the press is ignored.
func (s *IntakeService) Next(ctx context.Context, chatID, userID int64) *Reply {
	session, err := s.sessions.Get(chatID)
	if err != nil {
		s.logger.Error("Failed to load session", zap.Int64("chat_id", chatID), zap.Error(err))
		return &Reply{Text: msgGeneric}
	}
	if session == nil {
		return &Reply{Text: msgNotStarted}
	}

	switch session.Step {
	case domain.StepWelcome:
		session.Step = domain.StepName
		if err := s.sessions.Save(session); err != nil {
			s.logger.Error("Failed to save session", zap.Int64("chat_id", chatID), zap.Error(err))
			return &Reply{Text: msgGeneric}
		}
		return &Reply{Text: msgAskName}

	case domain.StepInviteMessage:
		return s.issueInvite(ctx, session, userID)

	default:
		return nil
	}
}

// Input handles a free-text message for the chat's current step
func (s *IntakeService) Input(ctx context.Context, chatID, userID int64, text string) *Reply {
	input := strings.TrimSpace(text)

	session, err := s.sessions.Get(chatID)
	if err != nil {
		s.logger.Error("Failed to load session", zap.Int64("chat_id", chatID), zap.Error(err))
		return &Reply{Text: msgGeneric}
	}
	if session == nil {
		return &Reply{Text: msgNotStarted}
	}

	switch session.Step {
	case domain.StepName:
		if err := validate.Name(input); err != nil {
			return &Reply{Text: msgInvalidName}
		}
		session.Name = input
		return s.advance(session, domain.StepRole, msgAskRole)

	case domain.StepRole:
		if err := validate.Role(input); err != nil {
			return &Reply{Text: msgInvalidRole}
		}
		session.Role = input
		return s.advance(session, domain.StepCity, msgAskCity)

	case domain.StepCity:
		if err := validate.City(input); err != nil {
			return &Reply{Text: msgInvalidCity}
		}
		session.City = input
		return s.advance(session, domain.StepPhone, msgAskPhone)

	case domain.StepPhone:
		if err := validate.Phone(input); err != nil {
			return &Reply{Text: msgInvalidPhone}
		}
		session.Phone = input
		return s.advance(session, domain.StepEmail, msgAskEmail)

	case domain.StepEmail:
		if err := validate.Email(input); err != nil {
			return &Reply{Text: msgInvalidEmail}
		}
		session.Email = input
		return s.sinkRecord(ctx, session)

	default:
		return &Reply{Text: msgNotStarted}
	}
}

// advance moves the session one step forward and sends the next prompt
func (s *IntakeService) advance(session *domain.Session, next domain.Step, prompt string) *Reply {
	session.Step = next
	if err := s.sessions.Save(session); err != nil {
		s.logger.Error("Failed to save session", zap.Int64("chat_id", session.ChatID), zap.Error(err))
		return &Reply{Text: msgGeneric}
	}
	return &Reply{Text: prompt}
}

// sinkRecord appends the completed record; the step only advances past email
// once the append succeeds, so the user can resubmit after a failure
func (s *IntakeService) sinkRecord(ctx context.Context, session *domain.Session) *Reply {
	if err := s.sink.Append(ctx, session.Record()); err != nil {
		s.logger.Error("Failed to append record",
			zap.Int64("chat_id", session.ChatID),
			zap.Error(err),
		)
		return &Reply{Text: msgSaveFailed}
	}

	s.logger.Info("Intake record saved", zap.Int64("chat_id", session.ChatID))

	session.Step = domain.StepInviteMessage
	if err := s.sessions.Save(session); err != nil {
		s.logger.Error("Failed to save session", zap.Int64("chat_id", session.ChatID), zap.Error(err))
		return &Reply{Text: msgGeneric}
	}

	return &Reply{Text: msgSaved, Keyboard: KeyboardNext}
}

// issueInvite re-checks membership, then creates the single-use invite link.
// On success the session is parked at the terminal step; on failure it stays
// at invite_message so another "Next" can retry.
func (s *IntakeService) issueInvite(ctx context.Context, session *domain.Session, userID int64) *Reply {
	if s.members.IsMember(ctx, userID) {
		if err := s.sessions.Delete(session.ChatID); err != nil {
			s.logger.Error("Failed to delete session", zap.Int64("chat_id", session.ChatID), zap.Error(err))
		}
		return &Reply{Text: msgAlreadyVerified}
	}

	link, err := s.invites.Issue(ctx)
	if err != nil {
		s.logger.Error("Failed to issue invite",
			zap.Int64("chat_id", session.ChatID),
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return &Reply{Text: msgInviteError}
	}

	session.Step = domain.StepShowJoin
	if err := s.sessions.Save(session); err != nil {
		s.logger.Error("Failed to save session", zap.Int64("chat_id", session.ChatID), zap.Error(err))
	}

	s.logger.Info("Invite issued",
		zap.Int64("chat_id", session.ChatID),
		zap.Int64("user_id", userID),
	)

	return &Reply{Text: msgJoin, Markdown: true, Keyboard: KeyboardJoin, JoinURL: link}
}
