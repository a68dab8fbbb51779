package handler

import (
	"context"
	"errors"
	"time"

	"indiekaum-bot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// BotClient adapts *tele.Bot to the service collaborator interfaces
type BotClient struct {
	bot *tele.Bot
}

// NewBotClient wraps a telebot instance
func NewBotClient(bot *tele.Bot) *BotClient {
	return &BotClient{bot: bot}
}

// MemberStatus implements service.MemberLookup
func (c *BotClient) MemberStatus(_ context.Context, groupID, userID int64) (domain.MemberStatus, error) {
	member, err := c.bot.ChatMemberOf(tele.ChatID(groupID), tele.ChatID(userID))
	if err != nil {
		return domain.StatusUnknown, err
	}

	switch member.Role {
	case tele.Creator:
		return domain.StatusCreator, nil
	case tele.Administrator:
		return domain.StatusAdministrator, nil
	case tele.Member:
		return domain.StatusMember, nil
	default:
		return domain.StatusNotMember, nil
	}
}

// CreateInviteLink implements service.LinkCreator. A Telegram "group
// migrated" response is translated into domain.GroupMigratedError carrying
// the replacement chat id.
func (c *BotClient) CreateInviteLink(_ context.Context, groupID int64, memberLimit int, expireAt time.Time) (string, error) {
	link, err := c.bot.CreateInviteLink(tele.ChatID(groupID), &tele.ChatInviteLink{
		MemberLimit:    memberLimit,
		ExpireUnixtime: expireAt.Unix(),
	})
	if err != nil {
		var migrated tele.GroupError
		if errors.As(err, &migrated) {
			return "", &domain.GroupMigratedError{NewChatID: migrated.MigratedTo}
		}
		return "", err
	}

	return link.InviteLink, nil
}
